package jobs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"Backend-SchoolAdmin/src/services/uploads"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDeleteResumeTask(t *testing.T) {
	dir := t.TempDir()
	svc := uploads.NewService(dir)

	path := filepath.Join(dir, "cv-test.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf"), 0644))

	task, err := NewDeleteResumeTask(path)
	require.NoError(t, err)

	handler := HandleDeleteResumeTask(svc)
	require.NoError(t, handler(context.Background(), task))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// ไฟล์หายไปก่อน ไม่ retry
	assert.NoError(t, handler(context.Background(), task))
}

func TestHandleDeleteResumeTaskBadPayload(t *testing.T) {
	svc := uploads.NewService(t.TempDir())
	task := asynq.NewTask(TypeDeleteResume, []byte("pas du json"))

	err := HandleDeleteResumeTask(svc)(context.Background(), task)
	assert.Error(t, err)
}

// dispatcher ที่ไม่มี Asynq ต้องบอกผู้เรียกให้ fallback
func TestDispatcherWithoutClient(t *testing.T) {
	var d *Dispatcher
	assert.False(t, d.DeleteResume("uploads/cv/x.pdf"))

	d = NewDispatcher(nil)
	assert.False(t, d.DeleteResume("uploads/cv/x.pdf"))
}
