// Contact handlers. Store outcomes map to status codes: validation failure
// is 400 with the field report, duplicate ID is 409, missing ID is 404, and
// a backing-database failure is 503.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// ListContacts returns every contact in ascending ID order.
func ListContacts(store types.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		contacts, err := store.List()
		if err != nil {
			renderStoreError(c, err)
			return
		}
		if contacts == nil {
			contacts = []*types.Contact{}
		}
		c.JSON(http.StatusOK, gin.H{"contacts": contacts})
	}
}

// GetContact returns a single contact by ID.
func GetContact(store types.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		contact, err := store.Get(c.Param("id"))
		if err != nil {
			renderStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, contact)
	}
}

// AddContact creates a contact from the JSON body.
func AddContact(store types.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var candidate types.Contact
		if err := c.ShouldBindJSON(&candidate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		stored, err := store.Add(&candidate)
		if err != nil {
			renderStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, stored)
	}
}

// UpdateContact applies a partial or full update to the contact with the
// path ID. An "id" field in the body is ignored; the ID is immutable.
func UpdateContact(store types.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch types.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		updated, err := store.Update(c.Param("id"), patch)
		if err != nil {
			renderStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteContact removes the contact with the path ID.
func DeleteContact(store types.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := store.Remove(id); err != nil {
			renderStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}

// renderStoreError translates a store outcome into an HTTP response.
func renderStoreError(c *gin.Context, err error) {
	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	case errors.Is(err, types.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": "contact id already exists"})
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrInvalidID):
		c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
	case errors.Is(err, types.ErrStorageUnavailable), errors.Is(err, types.ErrDetached):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
