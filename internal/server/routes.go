package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farooque06/portfolio/internal/chat"
	"github.com/farooque06/portfolio/internal/overlay"
	"github.com/farooque06/portfolio/internal/relay"
)

const (
	introCookie = "intro_seen"

	contactSuccessMessage = "Thank you for your message! I'll get back to you soon."
	contactFailureMessage = "Something went wrong. Please try again later."
	contactMissingMessage = "Please fill in every field."
)

type chatView struct {
	Open     bool
	Channels []chat.Channel
}

func (s *Server) registerRoutes(r *gin.Engine) {
	// Home page route
	r.GET("/", s.handleIndex)

	// HTMX contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", s.handleContactForm)
	r.POST("/api/contact", s.handleContactAPI)

	r.GET("/chat", s.handleChat)
	r.POST("/intro/dismiss", s.handleIntroDismiss)
	r.GET("/ws/typing", s.handleTypingStream)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (s *Server) handleIndex(c *gin.Context) {
	// The page's scroll-lock lives for this render; the splash releases it
	// on every exit path.
	var lock overlay.ScrollLock
	splash := overlay.NewSplash(&lock)
	defer splash.Dismiss()

	if s.cfg.Intro {
		if _, err := c.Cookie(introCookie); err != nil {
			splash.Show()
		}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"site":         s.content,
		"bio":          s.content.BioHTML(),
		"firstRole":    s.content.FirstRole(),
		"year":         time.Now().Year(),
		"showIntro":    splash.Visible(),
		"scrollLocked": lock.Locked(),
		"chat":         chatView{Open: false, Channels: s.launcher.Channels()},
	})
}

func (s *Server) handleContactForm(c *gin.Context) {
	var sub relay.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": contactMissingMessage,
		})
		return
	}

	if _, err := s.relay.Submit(c.Request.Context(), sub); err != nil {
		log.Printf("server: contact form: %v", err)
		// Return error message HTML fragment
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": contactFailureMessage,
		})
		return
	}

	// Return success message HTML fragment
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": contactSuccessMessage,
	})
}

func (s *Server) handleContactAPI(c *gin.Context) {
	var sub relay.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": contactMissingMessage})
		return
	}

	receipt, err := s.relay.Submit(c.Request.Context(), sub)
	if err != nil {
		log.Printf("server: contact api: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, relay.ErrDeliveryFailure) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"success": false, "message": contactFailureMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": contactSuccessMessage, "id": receipt.ID})
}

// handleChat renders the launcher in the state opposite to the one the
// client reports.
func (s *Server) handleChat(c *gin.Context) {
	open, _ := strconv.ParseBool(c.Query("open"))
	c.HTML(http.StatusOK, "chat.html", chatView{
		Open:     chat.Toggle(open),
		Channels: s.launcher.Channels(),
	})
}

func (s *Server) handleIntroDismiss(c *gin.Context) {
	c.SetCookie(introCookie, "1", 3600*24*365, "/", "", false, true)
	c.Header("HX-Trigger", "intro-dismissed")
	c.String(http.StatusOK, "")
}
