package service

import (
	"errors"

	"github.com/ballgenius/ballgenius-backend/internal/repository"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidScore        = errors.New("invalid score")
	ErrAlreadyPredicted    = errors.New("already predicted")
	ErrNotPredictable      = errors.New("game is closed for predictions")
	ErrGameCancelled       = errors.New("game is cancelled")
	ErrGameCompleted       = errors.New("game is already completed")
	ErrBetAmountOutOfRange = errors.New("bet amount out of range")

	// ErrInsufficientPoints surfaces the ledger guard: a debit that would go
	// below zero is rejected wholesale.
	ErrInsufficientPoints = repository.ErrInsufficientPoints
)
