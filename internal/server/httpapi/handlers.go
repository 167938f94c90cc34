package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/solsocial/internal/common"
)

// Request/response bodies are explicit per-endpoint structs validated at the
// boundary before anything reaches core logic.

type challengeResponse struct {
	WalletAddress string `json:"wallet_address"`
	Message       string `json:"message"`
}

type walletAuthRequest struct {
	WalletAddress string `json:"wallet_address"`
	Message       string `json:"message"`
	// The wallet extension hands the signature over as an array of byte
	// values, so the field decodes from JSON numbers rather than base64.
	SignedMessage   []int  `json:"signed_message"`
	CaptchaResponse string `json:"captcha_response,omitempty"`
}

type walletAuthResponse struct {
	Success       bool   `json:"success"`
	WalletAddress string `json:"wallet_address"`
	AuthToken     string `json:"auth_token"`
}

type createPostRequest struct {
	Content       string `json:"content"`
	Author        string `json:"author"`
	WalletAddress string `json:"wallet_address"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "API running"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChallenge(w http.ResponseWriter, r *http.Request) {
	wallet := r.URL.Query().Get("wallet")
	if wallet == "" {
		writeError(w, fmt.Errorf("%w: wallet query parameter is required", common.ErrorValidation))
		return
	}

	message, err := s.users.IssueChallenge(r.Context(), wallet)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, challengeResponse{WalletAddress: wallet, Message: message})
}

func (s *Server) handleWalletAuth(w http.ResponseWriter, r *http.Request) {
	var req walletAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", common.ErrorValidation))
		return
	}
	if req.WalletAddress == "" || req.Message == "" || len(req.SignedMessage) == 0 {
		writeError(w, fmt.Errorf("%w: wallet_address, message and signed_message are required", common.ErrorValidation))
		return
	}

	signature, err := bytesFromInts(req.SignedMessage)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.users.Authenticate(r.Context(), req.WalletAddress, req.Message, signature, req.CaptchaResponse)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, walletAuthResponse{
		Success:       true,
		WalletAddress: result.WalletAddress,
		AuthToken:     result.Token,
	})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	result, err := s.posts.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	wallet, ok := walletFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", common.ErrorValidation))
		return
	}

	// the token subject must own the post being created
	if req.WalletAddress != wallet {
		writeError(w, common.ErrorForbidden)
		return
	}

	post, err := s.posts.Create(r.Context(), req.Content, req.Author, wallet)
	if err != nil {
		writeError(w, err)
		return
	}

	s.users.UpdateDisplayName(r.Context(), wallet, req.Author)

	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	wallet, ok := walletFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}

	postID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: post id must be an integer", common.ErrorValidation))
		return
	}

	post, err := s.posts.ToggleLike(r.Context(), postID, wallet)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func bytesFromInts(values []int) ([]byte, error) {
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: signed_message values must be bytes", common.ErrorValidation)
		}
		out[i] = byte(v)
	}
	return out, nil
}
