// Package model contains data structures for launch parameters, the search request and node DTOs
package model

import (
	"fmt"
	"slices"
)

type AppMode string

const (
	ModeLocal  = AppMode("local")
	ModeMaster = AppMode("master")
	ModeSlave  = AppMode("slave")
)

// DefaultMasterAddress is reserved for the master and cannot be taken by a slave-node
const DefaultMasterAddress = ":8080"

// CaseSensitiveEnv - presence of this variable (any value, even empty) turns on case-sensitive search
const CaseSensitiveEnv = "CASE_SENSITIVE"

type AppInit struct {
	Mode     AppMode
	Address  string
	Slaves   NodesList
	Quorum   int
	Query    string
	FileName string
	// CaseSensitive is decided by presence of CaseSensitiveEnv, never by its value
	CaseSensitive bool
}

// NodesList - для чтения списка slave-nodes в виде слайса из os.Args
type NodesList []string

func (n *NodesList) String() string {
	return fmt.Sprint(*n)
}

func (n *NodesList) Set(value string) error { // в Set сразу избавляемся от дубликатов и пустых адресов
	if value == "" || slices.Contains(*n, value) {
		return nil
	}
	*n = append(*n, value)
	return nil
}

// SearchRequest is built once per invocation and is not modified afterwards
type SearchRequest struct {
	Query         string
	Source        string
	CaseSensitive bool
}

// MatchResult - matching lines in source order; each line is a substring of SearchRequest.Source
type MatchResult []string

// SlaveTask - задание, которое master отправляет на slave-node
type SlaveTask struct {
	TaskID        string `json:"tid" binding:"required"`
	Query         string `json:"query"`
	Source        string `json:"source"`
	CaseSensitive bool   `json:"case_sensitive"`
}

func (t *SlaveTask) Request() SearchRequest {
	return SearchRequest{
		Query:         t.Query,
		Source:        t.Source,
		CaseSensitive: t.CaseSensitive,
	}
}

// SlaveResult - ответ slave-node: результат фильтрации и его хеш для подсчета голосов
type SlaveResult struct {
	TaskID   string   `json:"tid" binding:"required"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
