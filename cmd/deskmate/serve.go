// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/deskmate"
	"github.com/poiesic/deskmate/core"
	"github.com/poiesic/deskmate/storage"
)

func serveCommand(c *cli.Context) error {
	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	var db *deskmate.Database
	if path := c.String("db"); path != "" {
		db, err = deskmate.NewDatabase(path)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	router := newServer(assistant, db)

	addr := c.String("addr")
	slog.Info("serving", slog.String("addr", addr), slog.Bool("persistence", db != nil))
	return router.Run(addr)
}

// newServer assembles the HTTP surface. The chat contract is one string
// in, one string out; persistence endpoints only exist when a database
// was opened.
func newServer(assistant *deskmate.Assistant, db *deskmate.Database) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.POST("/chat", func(c *gin.Context) {
		var req struct {
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": assistant.Reply(req.Message)})
	})

	router.GET("/topics", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"topics": assistant.Topics()})
	})

	router.POST("/reload", func(c *gin.Context) {
		if err := assistant.Reload(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"topics": assistant.Topics()})
	})

	if db != nil {
		registerAccountRoutes(router, db.AccountRepository())
		registerFeedbackRoutes(router, db.FeedbackRepository())
		registerTicketRoutes(router, db.TicketRepository())
	}

	return router
}

func registerAccountRoutes(router *gin.Engine, accounts storage.AccountRepository) {
	type accountRequest struct {
		Username   string `json:"username"`
		Name       string `json:"name"`
		StaffNo    string `json:"staff_no"`
		Email      string `json:"email"`
		Branch     string `json:"branch"`
		RemoteDays int    `json:"remote_days"`
		Password   string `json:"password"`
	}

	toAccount := func(req accountRequest) *core.Account {
		return &core.Account{
			Username:     req.Username,
			Name:         req.Name,
			StaffNo:      req.StaffNo,
			Email:        req.Email,
			Branch:       req.Branch,
			RemoteDays:   req.RemoteDays,
			PasswordHash: core.HashPassword(req.Password),
		}
	}

	router.POST("/accounts", func(c *gin.Context) {
		var req accountRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := accounts.CreateAccount(c.Request.Context(), toAccount(req)); err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"username": req.Username})
	})

	router.POST("/login", func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		account, err := accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"username": account.Username,
			"name":     account.Name,
			"branch":   account.Branch,
		})
	})

	router.PUT("/accounts/:username", func(c *gin.Context) {
		var req accountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		req.Username = c.Param("username")

		account := toAccount(req)
		if req.Password == "" {
			// keep the stored digest on profile-only updates
			existing, err := accounts.GetAccount(c.Request.Context(), req.Username)
			if err != nil {
				writeStorageError(c, err)
				return
			}
			account.PasswordHash = existing.PasswordHash
		}

		if err := accounts.UpdateAccount(c.Request.Context(), account); err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": account.Username})
	})
}

func registerFeedbackRoutes(router *gin.Engine, feedback storage.FeedbackRepository) {
	router.POST("/feedback", func(c *gin.Context) {
		var req struct {
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		entry, err := feedback.AddFeedback(c.Request.Context(), &core.Feedback{Comment: req.Comment})
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": entry.Id})
	})

	router.GET("/feedback", func(c *gin.Context) {
		entries, err := feedback.ListFeedback(c.Request.Context())
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedback": entries})
	})

	router.POST("/feedback/:id/reply", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback id"})
			return
		}
		var req struct {
			Reply string `json:"reply"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := feedback.ReplyFeedback(c.Request.Context(), core.ID(id), req.Reply); err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	router.DELETE("/feedback/:id", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback id"})
			return
		}
		if err := feedback.DeleteFeedback(c.Request.Context(), core.ID(id)); err != nil {
			writeStorageError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func registerTicketRoutes(router *gin.Engine, tickets storage.TicketRepository) {
	router.POST("/tickets", func(c *gin.Context) {
		var req struct {
			Subject string `json:"subject"`
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		ticket, err := tickets.AddTicket(c.Request.Context(), &core.Ticket{
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ref": ticket.Ref})
	})

	router.GET("/tickets", func(c *gin.Context) {
		all, err := tickets.ListTickets(c.Request.Context())
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tickets": all})
	})

	router.GET("/tickets/:ref", func(c *gin.Context) {
		ticket, err := tickets.GetTicket(c.Request.Context(), c.Param("ref"))
		if err != nil {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, ticket)
	})

	router.DELETE("/tickets/:ref", func(c *gin.Context) {
		if err := tickets.DeleteTicket(c.Request.Context(), c.Param("ref")); err != nil {
			writeStorageError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// writeStorageError maps repository errors onto HTTP statuses.
func writeStorageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, storage.ErrDuplicateKey):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, storage.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, core.ErrInvalidAccount),
		errors.Is(err, core.ErrInvalidFeedback),
		errors.Is(err, core.ErrInvalidTicket):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
