package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentStatusValid(t *testing.T) {
	valid := []StudentStatus{StudentStatusPending, StudentStatusAccepted, StudentStatusRejected}
	for _, s := range valid {
		assert.True(t, s.Valid(), "statut %q doit être accepté", s)
	}

	invalid := []StudentStatus{"", "inscrit", "accepté", "soumise"}
	for _, s := range invalid {
		assert.False(t, s.Valid(), "statut %q doit être rejeté", s)
	}
}

func TestApplicationStatusValid(t *testing.T) {
	valid := []ApplicationStatus{
		ApplicationStatusSubmitted,
		ApplicationStatusInReview,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), "statut %q doit être accepté", s)
	}

	invalid := []ApplicationStatus{"", "en_attente", "acceptée", "pending"}
	for _, s := range invalid {
		assert.False(t, s.Valid(), "statut %q doit être rejeté", s)
	}
}

// Final กำหนดว่าสถานะไหนต้องประทับ dateReponse
func TestApplicationStatusFinal(t *testing.T) {
	assert.True(t, ApplicationStatusAccepted.Final())
	assert.True(t, ApplicationStatusRejected.Final())
	assert.False(t, ApplicationStatusSubmitted.Final())
	assert.False(t, ApplicationStatusInReview.Final())
}
