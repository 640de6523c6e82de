package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-SchoolAdmin/src/services/uploads"

	"github.com/hibiken/asynq"
)

// HandleDeleteResumeTask ลบไฟล์ CV ของใบสมัครที่ถูกลบไปแล้ว
// ไฟล์หายไปก่อนถือว่างานเสร็จ ไม่ retry
func HandleDeleteResumeTask(up *uploads.Service) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload DeleteResumePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return err
		}

		if err := up.Remove(payload.Path); err != nil {
			log.Println("❌ Erreur lors de la suppression du fichier CV:", err)
			return err
		}

		log.Println("✅ Fichier CV supprimé:", payload.Path)
		return nil
	}
}

// RunWorker รัน asynq worker สำหรับงานเบื้องหลัง (บล็อกจนกว่า server จะหยุด)
func RunWorker(redisURI string, up *uploads.Service) error {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDeleteResume, HandleDeleteResumeTask(up))

	return srv.Run(mux)
}
