package models

import "errors"

// ErrInvalidArgument indicates a malformed article field value.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDuplicateArticle indicates the article to add collides with an existing one.
var ErrDuplicateArticle = errors.New("article already exists")

// ErrArticleNotFound indicates no article carries the requested code.
var ErrArticleNotFound = errors.New("article not found")

// ErrInsufficientStock indicates a decrease would drive units below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrPersistence wraps parse, I/O and encoding failures during load or save.
var ErrPersistence = errors.New("persistence failure")
