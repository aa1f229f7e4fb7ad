package httpadapter

import (
	"encoding/json"
	"net/http"
)

// setCORSHeaders adds the permissive CORS headers every /track response
// carries, so scans opened inside webviews are never blocked.
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

// writeJSONError writes a {"error": "<message>"} body with the given
// status code.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
