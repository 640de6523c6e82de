package students

import (
	"context"
	"errors"
	"time"

	"Backend-SchoolAdmin/src/database"
	"Backend-SchoolAdmin/src/models"
	"Backend-SchoolAdmin/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service เข้าถึง collection students ผ่าน handle ที่ inject มาจาก main
type Service struct {
	col *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{col: db.Collection(database.StudentCollection)}
}

// Create บันทึกใบสมัครใหม่ สถานะตั้งต้น en_attente
// เช็ค email ซ้ำก่อน insert — ถ้าแพ้ race ให้ unique index เป็นด่านสุดท้าย
func (s *Service) Create(student *models.Student) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.col.CountDocuments(ctx, bson.M{"email": student.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.DuplicateKey("email")
	}

	now := time.Now()
	student.ID = primitive.NewObjectID()
	student.Statut = models.StudentStatusPending
	student.DateInscription = now
	student.CreatedAt = now
	student.UpdatedAt = now

	if _, err := s.col.InsertOne(ctx, student); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.DuplicateKey("email")
		}
		return err
	}
	return nil
}

// List ดึงรายการนักเรียนตามตัวกรอง เรียงวันสมัครล่าสุดก่อน
func (s *Service) List(filter models.StudentFilter, params models.PaginationParams) ([]models.Student, models.PaginationMeta, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Niveau != "" {
		query["niveau"] = filter.Niveau
	}
	if filter.Classe != "" {
		query["classe"] = filter.Classe
	}
	if filter.Statut != "" {
		query["statut"] = filter.Statut
	}

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, models.PaginationMeta{}, err
	}

	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "dateInscription", Value: -1}})

	cursor, err := s.col.Find(ctx, query, findOptions)
	if err != nil {
		return nil, models.PaginationMeta{}, err
	}
	defer cursor.Close(ctx)

	students := make([]models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, models.PaginationMeta{}, err
	}

	return students, models.NewPaginationMeta(params, total), nil
}

// GetByID ดึงนักเรียนตาม id
func (s *Service) GetByID(id string) (*models.Student, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.InvalidID()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var student models.Student
	err = s.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFound("Étudiant non trouvé")
	} else if err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStatus เปลี่ยนสถานะใบสมัคร — แก้เฉพาะ statut เท่านั้น
func (s *Service) UpdateStatus(id, statut string) (*models.Student, error) {
	if !models.StudentStatus(statut).Valid() {
		return nil, utils.InvalidStatus()
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.InvalidID()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"statut":    statut,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var student models.Student
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFound("Étudiant non trouvé")
	} else if err != nil {
		return nil, err
	}
	return &student, nil
}

// Delete ลบใบสมัครตาม id (นักเรียนไม่มีไฟล์แนบ ไม่มี cleanup ต่อ)
func (s *Service) Delete(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.InvalidID()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.NotFound("Étudiant non trouvé")
	}
	return nil
}
