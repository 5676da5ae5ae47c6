package appointments

import (
	"mediconnect-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildConflictFilter(t *testing.T) {
	doctorID := primitive.NewObjectID()
	start := time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	filter := buildConflictFilter(doctorID, start, end)

	assert.Equal(t, doctorID, filter["doctor_id"])
	assert.Equal(t, bson.M{"$nin": []string{constvars.AppointmentStatusCancelled, constvars.AppointmentStatusNoShow}}, filter["status"])
	assert.Equal(t, bson.M{"$lt": end}, filter["appointment_date"])
	assert.Equal(t, bson.M{"$gt": start}, filter["end_time"])
}
