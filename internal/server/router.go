package server

import "net/http"

// Router registers every route on a fresh mux.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.health)

	mux.HandleFunc("POST /accounts", s.createAccount)
	mux.HandleFunc("GET /accounts", s.listAccounts)
	mux.HandleFunc("POST /sessions", s.authenticate)

	mux.HandleFunc("POST /accounts/{id}/deposit", s.deposit)
	mux.HandleFunc("POST /accounts/{id}/withdraw", s.withdraw)
	mux.HandleFunc("GET /accounts/{id}/balance", s.balance)
	mux.HandleFunc("GET /accounts/{id}/history", s.history)

	mux.HandleFunc("POST /transfers", s.transfer)

	if s.events != nil {
		mux.HandleFunc("GET /events", s.pollEvents)
	}
	return mux
}
