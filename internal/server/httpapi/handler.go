package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/bookkeeper/internal/common"
	"github.com/dmitrijs2005/bookkeeper/internal/server/auth"
	"github.com/dmitrijs2005/bookkeeper/internal/server/books"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) registerUser(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		http.Error(w, "Error registering user", http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.UserName)
	_, _ = w.Write([]byte("User registered"))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			http.Error(w, "Invalid credentials", http.StatusBadRequest)
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	auth.AttachToken(w, token, s.users.TokenValidityDuration(), s.cookieSecure)
	_, _ = w.Write([]byte("Logged in"))
}

func (s *Server) listBooks(w http.ResponseWriter, r *http.Request) {

	list, err := s.books.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing books failed", "error", err.Error())
		http.Error(w, "Error fetching books", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		s.logger.Error(r.Context(), "encoding books failed", "error", err.Error())
	}
}

func (s *Server) addBook(w http.ResponseWriter, r *http.Request) {

	var book books.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := s.books.Create(r.Context(), &book); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		s.logger.Error(r.Context(), "adding book failed", "error", err.Error())
		http.Error(w, "Error adding book", http.StatusInternalServerError)
		return
	}

	_, _ = w.Write([]byte("Book added"))
}

func (s *Server) updateBook(w http.ResponseWriter, r *http.Request) {

	isbn := chi.URLParam(r, "isbn")

	var book books.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := s.books.Update(r.Context(), isbn, &book); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		s.logger.Error(r.Context(), "updating book failed", "error", err.Error())
		http.Error(w, "Error updating book", http.StatusInternalServerError)
		return
	}

	_, _ = w.Write([]byte("Book updated"))
}

func (s *Server) deleteBook(w http.ResponseWriter, r *http.Request) {

	isbn := chi.URLParam(r, "isbn")

	if err := s.books.Delete(r.Context(), isbn); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		s.logger.Error(r.Context(), "deleting book failed", "error", err.Error())
		http.Error(w, "Error deleting book", http.StatusInternalServerError)
		return
	}

	_, _ = w.Write([]byte("Book deleted"))
}

func (s *Server) coverUploadURL(w http.ResponseWriter, r *http.Request) {

	key, url, err := s.covers.GetPresignedPutUrl(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "presigning upload failed", "error", err.Error())
		http.Error(w, "Error preparing upload", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"key": key, "url": url})
}

func (s *Server) coverDownloadURL(w http.ResponseWriter, r *http.Request) {

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	url, err := s.covers.GetPresignedGetUrl(r.Context(), key)
	if err != nil {
		s.logger.Error(r.Context(), "presigning download failed", "error", err.Error())
		http.Error(w, "Error preparing download", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"url": url})
}
