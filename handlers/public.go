package handlers

import (
	"net/http"

	"github.com/mahidrahman375/coffee-shop/statemachine"
	"github.com/mahidrahman375/coffee-shop/store"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the read-only views both front-ends need before a
// session exists: the floor plan and the menu.
type PublicHandler struct {
	tables *store.TableRepo
	menu   *store.MenuRepo
}

func NewPublicHandler(repos *store.Repos) *PublicHandler {
	return &PublicHandler{tables: repos.Tables, menu: repos.Menu}
}

// ListTables returns all tables ordered by number, with status
func (h *PublicHandler) ListTables(c *gin.Context) {
	tables, err := h.tables.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

// GetMenu returns the orderable menu sorted by name
func (h *PublicHandler) GetMenu(c *gin.Context) {
	items, err := h.menu.ListAvailable()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func (h *PublicHandler) GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"completed", "cancelled"},
		"description":     "Table Order Lifecycle State Machine",
	})
}
