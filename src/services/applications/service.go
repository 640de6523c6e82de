package applications

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-SchoolAdmin/src/database"
	"Backend-SchoolAdmin/src/jobs"
	"Backend-SchoolAdmin/src/models"
	"Backend-SchoolAdmin/src/services/uploads"
	"Backend-SchoolAdmin/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service เข้าถึง collection jobapplications
// ถือ uploads service ไว้ลบไฟล์ CV และ dispatcher สำหรับส่งงานเข้า queue
type Service struct {
	col        *mongo.Collection
	uploads    *uploads.Service
	dispatcher *jobs.Dispatcher
}

func NewService(db *mongo.Database, up *uploads.Service, dispatcher *jobs.Dispatcher) *Service {
	return &Service{
		col:        db.Collection(database.JobApplicationCollection),
		uploads:    up,
		dispatcher: dispatcher,
	}
}

// Create บันทึกใบสมัครงานใหม่ — สมัครซ้ำด้วย email เดิมได้
// cvPath มาจาก uploads service ตอน controller รับไฟล์แล้ว
func (s *Service) Create(application *models.JobApplication) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	application.ID = primitive.NewObjectID()
	application.Statut = models.ApplicationStatusSubmitted
	application.DateCandidature = now
	application.CreatedAt = now
	application.UpdatedAt = now

	_, err := s.col.InsertOne(ctx, application)
	return err
}

// List ดึงรายการใบสมัครงาน posteSouhaite ค้นแบบ substring ไม่สนตัวพิมพ์
func (s *Service) List(filter models.ApplicationFilter, params models.PaginationParams) ([]models.JobApplication, models.PaginationMeta, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Statut != "" {
		query["statut"] = filter.Statut
	}
	if filter.PosteSouhaite != "" {
		query["posteSouhaite"] = bson.M{"$regex": filter.PosteSouhaite, "$options": "i"}
	}

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, models.PaginationMeta{}, err
	}

	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "dateCandidature", Value: -1}})

	cursor, err := s.col.Find(ctx, query, findOptions)
	if err != nil {
		return nil, models.PaginationMeta{}, err
	}
	defer cursor.Close(ctx)

	applications := make([]models.JobApplication, 0)
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, models.PaginationMeta{}, err
	}

	return applications, models.NewPaginationMeta(params, total), nil
}

// GetByID ดึงใบสมัครงานตาม id
func (s *Service) GetByID(id string) (*models.JobApplication, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.InvalidID()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var application models.JobApplication
	err = s.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&application)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFound("Candidature non trouvée")
	} else if err != nil {
		return nil, err
	}
	return &application, nil
}

// UpdateStatus เปลี่ยนสถานะ + commentaireRH (ถ้าส่งมา)
// dateReponse บันทึกก็ต่อเมื่อสถานะใหม่คือ acceptee หรือ refusee
func (s *Service) UpdateStatus(id, statut, commentaireRH string) (*models.JobApplication, error) {
	status := models.ApplicationStatus(statut)
	if !status.Valid() {
		return nil, utils.InvalidStatus()
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.InvalidID()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fields := bson.M{
		"statut":    statut,
		"updatedAt": time.Now(),
	}
	if commentaireRH != "" {
		fields["commentaireRH"] = commentaireRH
	}
	if status.Final() {
		fields["dateReponse"] = time.Now()
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var application models.JobApplication
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": fields}, opts).Decode(&application)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFound("Candidature non trouvée")
	} else if err != nil {
		return nil, err
	}
	return &application, nil
}

// Delete ลบใบสมัคร แล้วค่อยลบไฟล์ CV แบบ best effort
// ลบไฟล์พลาดแค่ log — ไม่ย้อน ไม่บล็อก response
func (s *Service) Delete(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.InvalidID()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var application models.JobApplication
	err = s.col.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&application)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return utils.NotFound("Candidature non trouvée")
	} else if err != nil {
		return err
	}

	if application.CVPath != "" {
		s.cleanupResume(application.CVPath)
	}
	return nil
}

// cleanupResume ส่งงานลบไฟล์เข้า queue ถ้ามี Asynq ไม่มีก็ลบใน goroutine ตรง ๆ
func (s *Service) cleanupResume(path string) {
	if s.dispatcher.DeleteResume(path) {
		return
	}

	go func() {
		if err := s.uploads.Remove(path); err != nil {
			log.Println("❌ Erreur lors de la suppression du fichier CV:", err)
		}
	}()
}

// Stats สรุปจำนวนใบสมัคร: ทั้งหมด, เดือนนี้, แยกตามสถานะ
// ขอบเขตเดือน = วันที่ 1 ของเดือนปัจจุบัน 00:00 เวลาท้องถิ่นของ server
func (s *Service) Stats() (*models.ApplicationStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$statut",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Status models.ApplicationStatus `bson:"_id"`
		Count  int64                    `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	byStatus := make(map[models.ApplicationStatus]int64)
	for _, r := range results {
		byStatus[r.Status] = r.Count
	}

	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth, err := s.col.CountDocuments(ctx, bson.M{
		"dateCandidature": bson.M{"$gte": monthStart},
	})
	if err != nil {
		return nil, err
	}

	return &models.ApplicationStats{
		Total:     total,
		ThisMonth: thisMonth,
		ByStatus:  byStatus,
	}, nil
}
