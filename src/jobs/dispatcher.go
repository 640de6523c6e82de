package jobs

import (
	"log"

	"github.com/hibiken/asynq"
)

// Dispatcher ส่งงานเข้า queue ถ้ามี Asynq ให้ใช้
// nil-safe: ไม่มี Redis ผู้เรียกต้อง fallback เอง
type Dispatcher struct {
	client *asynq.Client
}

func NewDispatcher(client *asynq.Client) *Dispatcher {
	return &Dispatcher{client: client}
}

// DeleteResume enqueue งานลบไฟล์ CV คืน false ถ้าส่งเข้า queue ไม่ได้
func (d *Dispatcher) DeleteResume(path string) bool {
	if d == nil || d.client == nil {
		return false
	}

	task, err := NewDeleteResumeTask(path)
	if err != nil {
		log.Println("❌ Failed to build delete-resume task:", err)
		return false
	}

	if _, err := d.client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		log.Println("❌ Failed to enqueue delete-resume task:", err)
		return false
	}

	log.Println("✅ Enqueued delete-resume task:", path)
	return true
}
