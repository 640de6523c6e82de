package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeDeleteResume = "resume:delete"

type DeleteResumePayload struct {
	Path string `json:"path"`
}

func NewDeleteResumeTask(path string) (*asynq.Task, error) {
	payload, err := json.Marshal(DeleteResumePayload{Path: path})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDeleteResume, payload), nil
}
