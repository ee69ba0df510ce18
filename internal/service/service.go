// Package service implements the chat operations on top of the session
// store and the completion client.
package service

import (
	"github.com/briefbot/briefbot/internal/adapter/llm"
	"github.com/briefbot/briefbot/internal/config"
	"github.com/briefbot/briefbot/internal/repository"
	"github.com/briefbot/briefbot/internal/store"
)

type Service struct {
	chats  *store.ChatStore
	llm    llm.CompletionClient
	users  *repository.UserRepository
	config *config.Config
}

func New(chats *store.ChatStore, client llm.CompletionClient, users *repository.UserRepository, cfg *config.Config) *Service {
	return &Service{
		chats:  chats,
		llm:    client,
		users:  users,
		config: cfg,
	}
}
