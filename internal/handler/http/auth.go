package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/internal/service"
	"github.com/comicgate/comicgate/internal/store"
	"github.com/comicgate/comicgate/internal/utils"
	"github.com/comicgate/comicgate/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "name, email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNameAlreadyExists):
			log.Err(err).Msg("name already exists")
			writeError(w, "name already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, tokenResponse{
		Message: "user registered successfully",
		Token:   token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "name and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			writeError(w, "invalid name/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("name", foundUser.Name).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, tokenResponse{
		Message: "login successful",
		Token:   token.SignedString,
	}, http.StatusOK)
}

// me returns the identity claims of the bearer token validated by the auth
// middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("no claims found in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	_, _ = utils.WriteJSON(w, identityResponse{
		Name:  claims.Name,
		Email: claims.Email,
	}, http.StatusOK)
}
