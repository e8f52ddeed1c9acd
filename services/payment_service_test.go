package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQRCodeURL(t *testing.T) {
	got := buildQRCodeURL("SACOMBANK", "060915374450", 2400, "Rental form 17")
	assert.Equal(t,
		"https://img.vietqr.io/image/SACOMBANK-060915374450-compact.jpg?amount=2400&addInfo=Rental+form+17",
		got)
}
