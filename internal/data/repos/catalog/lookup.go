package catalog

import (
	"errors"

	"gorm.io/gorm"
)

// Scope narrows a query. Repos accept scopes built by the query package.
type Scope = func(*gorm.DB) *gorm.DB

// whereNullable matches col against v, treating a nil pointer as IS NULL.
func whereNullable[T any](q *gorm.DB, col string, v *T) *gorm.DB {
	if v == nil {
		return q.Where(col + " IS NULL")
	}
	return q.Where(col+" = ?", *v)
}

// firstOrInsert returns the oldest row matched by q, or inserts fresh when none exists.
func firstOrInsert[T any](q *gorm.DB, insert *gorm.DB, fresh *T) (*T, bool, error) {
	var found T
	err := q.Order("id ASC").Limit(1).Take(&found).Error
	if err == nil {
		return &found, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := insert.Create(fresh).Error; err != nil {
		return nil, false, err
	}
	return fresh, true, nil
}

func takeByID[T any](q *gorm.DB, id uint) (*T, error) {
	if id == 0 {
		return nil, nil
	}
	var out T
	err := q.Where("id = ?", id).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func applyScopes(q *gorm.DB, scopes []Scope) *gorm.DB {
	if len(scopes) == 0 {
		return q
	}
	return q.Scopes(scopes...)
}
