package doctors

import (
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// doctorFilterStages selects active doctors joined with their profile.
// Accounts without a profile drop out at the unwind.
func doctorFilterStages(filter requests.DoctorListFilter) mongo.Pipeline {
	stages := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"role":      constvars.RoleDoctor,
			"is_active": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         constvars.MongoCollectionDoctorProfiles,
			"localField":   "_id",
			"foreignField": "user_id",
			"as":           "profile",
		}}},
		{{Key: "$unwind", Value: "$profile"}},
	}

	if filter.Specialty != "" {
		stages = append(stages, bson.D{{Key: "$match", Value: bson.M{
			"profile.specialty": bson.M{
				"$regex":   regexp.QuoteMeta(filter.Specialty),
				"$options": "i",
			},
		}}})
	}

	// Location matching is not supported yet; the stage keeps every document.
	if filter.Location != "" {
		stages = append(stages, bson.D{{Key: "$match", Value: bson.M{
			"first_name": bson.M{"$exists": true},
		}}})
	}

	return stages
}

func buildDoctorListPipeline(filter requests.DoctorListFilter, skip, limit int64) mongo.Pipeline {
	pipeline := doctorFilterStages(filter)
	return append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":              0,
			"id":               bson.M{"$toString": "$_id"},
			"name":             bson.M{"$concat": bson.A{"$first_name", " ", "$last_name"}},
			"specialty":        "$profile.specialty",
			"rating":           "$profile.rating",
			"consultation_fee": "$profile.consultation_fee",
			"years_experience": "$profile.years_experience",
		}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	)
}

func buildDoctorCountPipeline(filter requests.DoctorListFilter) mongo.Pipeline {
	pipeline := doctorFilterStages(filter)
	return append(pipeline, bson.D{{Key: "$count", Value: "total"}})
}

type doctorCount struct {
	Total int `bson:"total"`
}
