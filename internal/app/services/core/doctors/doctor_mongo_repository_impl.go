package doctors

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

// NewDoctorMongoRepository aggregates over the users collection and joins
// doctor profiles in the pipeline.
func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (repo *DoctorMongoRepository) FindDoctors(ctx context.Context, filter requests.DoctorListFilter, skip, limit int64) ([]responses.DoctorSummary, error) {
	cursor, err := repo.Collection.Aggregate(ctx, buildDoctorListPipeline(filter, skip, limit))
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]responses.DoctorSummary, 0, limit)
	err = cursor.All(ctx, &doctors)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (repo *DoctorMongoRepository) CountDoctors(ctx context.Context, filter requests.DoctorListFilter) (int, error) {
	cursor, err := repo.Collection.Aggregate(ctx, buildDoctorCountPipeline(filter))
	if err != nil {
		return 0, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var counts []doctorCount
	err = cursor.All(ctx, &counts)
	if err != nil {
		return 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	// $count emits nothing when no document matched.
	if len(counts) == 0 {
		return 0, nil
	}
	return counts[0].Total, nil
}
