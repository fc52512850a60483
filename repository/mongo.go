package repository

import (
	"context"
	"fmt"
	"time"

	"denuncias-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reportDoc is the Mongo shape of a report. Geometry travels as the canonical
// serialized text, the same JSON the reports table columns held, so encode
// and decode stay confined to this package.
type reportDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            primitive.ObjectID `bson:"userId"`
	Type              string             `bson:"type"`
	Description       string             `bson:"description"`
	Date              string             `bson:"date,omitempty"`
	Time              string             `bson:"time,omitempty"`
	Witnesses         string             `bson:"witnesses,omitempty"`
	AdditionalDetails string             `bson:"additionalDetails,omitempty"`
	StolenItems       string             `bson:"stolenItems,omitempty"`
	ApproximateAmount string             `bson:"approximateAmount,omitempty"`
	Points            string             `bson:"points"`
	ExactLocation     string             `bson:"exactLocation,omitempty"`
	Images            []string           `bson:"images,omitempty"`
	Status            string             `bson:"status"`
	CreatedAt         time.Time          `bson:"createdAt"`
}

func toDoc(r *models.Report) (reportDoc, error) {
	points, err := models.EncodeRiskArea(r.RiskArea)
	if err != nil {
		return reportDoc{}, err
	}
	loc, err := models.EncodeExactLocation(r.ExactLocation)
	if err != nil {
		return reportDoc{}, err
	}
	return reportDoc{
		ID:                r.ID,
		UserID:            r.ReporterID,
		Type:              string(r.Type),
		Description:       r.Description,
		Date:              r.Date,
		Time:              r.Time,
		Witnesses:         r.Witnesses,
		AdditionalDetails: r.AdditionalDetails,
		StolenItems:       r.StolenItems,
		ApproximateAmount: r.ApproximateAmount,
		Points:            points,
		ExactLocation:     loc,
		Images:            r.Images,
		Status:            string(r.Status),
		CreatedAt:         r.CreatedAt,
	}, nil
}

func fromDoc(d reportDoc) (models.Report, error) {
	area, err := models.DecodeRiskArea(d.Points)
	if err != nil {
		return models.Report{}, fmt.Errorf("report %s: %w", d.ID.Hex(), err)
	}
	loc, err := models.DecodeExactLocation(d.ExactLocation)
	if err != nil {
		return models.Report{}, fmt.Errorf("report %s: %w", d.ID.Hex(), err)
	}
	return models.Report{
		ID:                d.ID,
		ReporterID:        d.UserID,
		Type:              models.ReportType(d.Type),
		Description:       d.Description,
		Date:              d.Date,
		Time:              d.Time,
		Witnesses:         d.Witnesses,
		AdditionalDetails: d.AdditionalDetails,
		StolenItems:       d.StolenItems,
		ApproximateAmount: d.ApproximateAmount,
		RiskArea:          area,
		ExactLocation:     loc,
		Images:            d.Images,
		Status:            models.ReportStatus(d.Status),
		CreatedAt:         d.CreatedAt,
	}, nil
}

// MongoReports implements ReportRepository on MongoDB.
type MongoReports struct {
	reports *mongo.Collection
	users   *mongo.Collection
}

// NewMongoReports wires the repository to the reports and users collections.
func NewMongoReports(db *mongo.Database) *MongoReports {
	return &MongoReports{
		reports: db.Collection("reports"),
		users:   db.Collection("users"),
	}
}

func (m *MongoReports) Save(ctx context.Context, report *models.Report) (*models.Report, error) {
	doc, err := toDoc(report)
	if err != nil {
		return nil, err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := m.reports.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: inserting report: %v", models.ErrPersistence, err)
	}

	stored := *report
	stored.ID = doc.ID
	return &stored, nil
}

func (m *MongoReports) FindByOwner(ctx context.Context, reporterID primitive.ObjectID) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.reports.Find(ctx, bson.M{"userId": reporterID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: querying reports: %v", models.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	return m.decodeAll(ctx, cursor)
}

func (m *MongoReports) FindAll(ctx context.Context) ([]AdminReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.reports.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: querying reports: %v", models.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	reports, err := m.decodeAll(ctx, cursor)
	if err != nil {
		return nil, err
	}

	out := make([]AdminReport, 0, len(reports))
	for _, r := range reports {
		entry := AdminReport{Report: r}

		var reporter models.User
		if err := m.users.FindOne(ctx, bson.M{"_id": r.ReporterID}).Decode(&reporter); err == nil {
			entry.Reporter = models.ReporterIdentity{
				FirstNames:      reporter.FirstNames,
				PaternalSurname: reporter.PaternalSurname,
				MaternalSurname: reporter.MaternalSurname,
				DNI:             reporter.DNI,
				Email:           reporter.Email,
				Phone:           reporter.Phone,
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func (m *MongoReports) FindPublic(ctx context.Context) ([]models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.reports.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: querying reports: %v", models.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	reports, err := m.decodeAll(ctx, cursor)
	if err != nil {
		return nil, err
	}
	for i := range reports {
		reports[i].ReporterID = primitive.NilObjectID
	}
	return reports, nil
}

func (m *MongoReports) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReportStatus) (*models.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc reportDoc
	err := m.reports.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
		opts,
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: updating status: %v", models.ErrPersistence, err)
	}

	report, err := fromDoc(doc)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (m *MongoReports) decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]models.Report, error) {
	var docs []reportDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decoding reports: %v", models.ErrPersistence, err)
	}

	reports := make([]models.Report, 0, len(docs))
	for _, d := range docs {
		r, err := fromDoc(d)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}
