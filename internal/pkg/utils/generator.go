package utils

import (
	"fmt"
	"mediconnect-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateMeetingLink(baseURL string) string {
	return fmt.Sprintf(constvars.MeetingRoomPathFormat, strings.TrimRight(baseURL, "/"), uuid.NewString())
}

func BuildDoctorName(firstName, lastName string) string {
	return fmt.Sprintf(constvars.DoctorNameFormat, firstName, lastName)
}

func BuildDoctorLockKey(doctorID string) string {
	return fmt.Sprintf(constvars.RedisKeyBookingDoctorLockFormat, doctorID)
}
