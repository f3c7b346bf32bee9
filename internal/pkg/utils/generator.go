package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateBuyOrder builds the buy-order identifier the payment gateway sees.
// Webpay caps buy_order at 26 characters, so the appointment UUID is shortened
// to its first block plus a timestamp.
func GenerateBuyOrder(appointmentID string) string {
	short := appointmentID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("nm-%s-%d", short, time.Now().Unix())
}

func GenerateObjectName(prefix, ownerID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, ownerID, timestamp, fileExtension)
}
