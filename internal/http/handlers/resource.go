package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/exocatalog/internal/http/response"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
)

// resource is the list/create/retrieve/update/delete surface shared by the
// catalog entities. E is the stored entity, I its write payload.
type resource[E any, I any] struct {
	list   func(dbctx.Context) ([]*E, error)
	get    func(dbctx.Context, uint) (*E, error)
	create func(dbctx.Context, I) (*E, error)
	update func(dbctx.Context, uint, I) (*E, error)
	remove func(dbctx.Context, uint) error
	// snapshot turns a stored row into a payload for partial updates.
	snapshot func(*E) I
	view     func(*E) any
}

func (r *resource[E, I]) render(rows []*E) []any {
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.view(row))
	}
	return out
}

func (r *resource[E, I]) List(c *gin.Context) {
	rows, err := r.list(dbcFrom(c))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, r.render(rows))
}

func (r *resource[E, I]) Create(c *gin.Context) {
	var in I
	if !bindJSON(c, &in, false) {
		return
	}
	row, err := r.create(dbcFrom(c), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, r.view(row))
}

func (r *resource[E, I]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := r.get(dbcFrom(c), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, r.view(row))
}

// Put replaces every writable field.
func (r *resource[E, I]) Put(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in I
	if !bindJSON(c, &in, false) {
		return
	}
	r.save(c, id, in)
}

// Patch changes only the fields present in the body.
func (r *resource[E, I]) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dbc := dbcFrom(c)
	current, err := r.get(dbc, id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	in := r.snapshot(current)
	if !bindJSON(c, &in, true) {
		return
	}
	r.save(c, id, in)
}

func (r *resource[E, I]) save(c *gin.Context, id uint, in I) {
	row, err := r.update(dbcFrom(c), id, in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, r.view(row))
}

func (r *resource[E, I]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := r.remove(dbcFrom(c), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func identity[E any](row *E) any { return row }
