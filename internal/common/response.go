package common

import (
	"encoding/json"
	"net/http"
)

// Every API response, success or error, is wrapped in the same envelope:
//
//	{"status": {"code": 200, "status": "Success"}, "data": {...}}

type ResponseStatus struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
}

type Envelope struct {
	Status ResponseStatus `json:"status"`
	Data   any            `json:"data"`
}

type MessageData struct {
	Message string `json:"message"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, MessageData{Message: message})
}

func RespondWithJSON(w http.ResponseWriter, code int, data any) {
	label := "Success"
	if code >= http.StatusBadRequest {
		label = "Error"
	}

	envelope := Envelope{
		Status: ResponseStatus{Code: code, Status: label},
		Data:   data,
	}

	response, err := json.Marshal(envelope)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":{"code":500,"status":"Error"},"data":{"message":"Failed to marshal JSON response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
