package appmode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/qaggr"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/docker/distribution/uuid"
)

var (
	healthTimeout = 5 * time.Second // на обнаружение всех slave-nodes
	taskTimeout   = 1 * time.Minute
)

// RunMaster reads the file and asks slave-nodes one by one to filter it until
// ai.Quorum of them return the same result. Output is written only after the quorum.
func RunMaster(ctx context.Context, ai *model.AppInit, out io.Writer) error {
	source, err := reader.ReadInput(ai.FileName)
	if err != nil {
		return err
	}

	task := model.SlaveTask{
		TaskID:        uuid.Generate().String(),
		Query:         ai.Query,
		Source:        source,
		CaseSensitive: ai.CaseSensitive,
	}
	// сразу маршалим задание на отправку
	raw, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to MARSHAL task: %w", err)
	}

	client := &http.Client{}

	// проверить пингом, что хотя бы минимальное кол-во slave-nodes доступны
	nodes, err := checkSlavesHealth(ctx, client, ai.Slaves, ai.Quorum)
	if err != nil {
		return fmt.Errorf("failed to start grepping: %w", err)
	}

	aggr := qaggr.New(task.TaskID, ai.Quorum)
	for _, nodeAddr := range nodes {
		res, err := sendTaskToNode(ctx, client, nodeAddr, raw)
		if err != nil {
			log.Printf("Slave-node %q skipped: %v", nodeAddr, err)
			continue
		}
		if aggr.Add(res) {
			log.Printf("Task %q reached quorum of %d", task.TaskID, ai.Quorum)
			break
		}
	}

	lines, err := aggr.Result()
	if err != nil {
		return fmt.Errorf("failed to grep: %w", err)
	}
	return printLines(out, lines)
}

// checkSlavesHealth pings every node in order and returns the ones that answered 200
func checkSlavesHealth(ctx context.Context, client *http.Client, slavesAddr []string, quorumN int) ([]string, error) {
	rCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var goodSlaves []string
	for _, addr := range slavesAddr {
		if err := ping(rCtx, client, addr); err != nil {
			log.Printf("Slave-node %q is not available: %v", addr, err)
			continue
		}
		goodSlaves = append(goodSlaves, addr)
	}

	if len(goodSlaves) < quorumN {
		return nil, fmt.Errorf("only %d slave-nodes are OK to continue, while quorum should be %d", len(goodSlaves), quorumN)
	}
	return goodSlaves, nil
}

func ping(ctx context.Context, client *http.Client, addr string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr+"/ping", nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func sendTaskToNode(ctx context.Context, client *http.Client, na string, raw []byte) (*model.SlaveResult, error) {
	tCtx, cancel := context.WithTimeout(ctx, taskTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(tCtx, http.MethodPost, na+"/task", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to SEND task: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to SEND task: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("slave-node replied with status %d", resp.StatusCode)
	}

	var result model.SlaveResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to UNMARSHAL result: %w", err)
	}
	if result.Output == nil {
		return nil, errors.New("slave-node returned no output")
	}
	// голосуем только за тот вывод, который действительно дает заявленный хеш
	if sum := processor.Hash(result.Output); sum != result.HashSumm {
		return nil, fmt.Errorf("slave-node hash %d does not match its output (%d)", result.HashSumm, sum)
	}
	return &result, nil
}
