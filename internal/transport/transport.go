// Package transport provides a new server-entity(by ginext) for slave-mode operability with handlers to serve endpoints
package transport

import (
	"context"
	"log"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type TaskProcessor interface {
	ProcessInput(ctx context.Context, task *model.SlaveTask) *model.SlaveResult
}

type handlers struct {
	proc TaskProcessor
}

func NewSlaveServer(addr string, proc TaskProcessor) *http.Server {
	h := handlers{proc: proc}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/task", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	log.Println("Received a healthcheck request!")
	ctx.Status(http.StatusOK)
}

func (h handlers) ReceiveTask(ctx *ginext.Context) {
	var task model.SlaveTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	log.Printf("Received task: %q", task.TaskID)

	res := h.proc.ProcessInput(ctx.Request.Context(), &task)
	if res == nil {
		log.Printf("Task %q skipped: request cancelled", task.TaskID)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "task was not processed"})
		return
	}
	log.Printf("Task %q: %d matching line(s), hash %d", res.TaskID, len(res.Output), res.HashSumm)

	ctx.JSON(http.StatusOK, res)
}
