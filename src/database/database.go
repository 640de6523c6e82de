package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ชื่อ collection ตามของเดิม (mongoose pluralize)
const (
	StudentCollection        = "students"
	JobApplicationCollection = "jobapplications"
)

// Connect เชื่อมต่อ MongoDB และ Ping เพื่อยืนยันว่าใช้งานได้
// คืน client ให้ main เป็นคนถือและปิดเอง ไม่เก็บ global
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Println("✅ MongoDB connecté")
	return client, nil
}

// Disconnect ปิดการเชื่อมต่อตอน shutdown
func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Println("⚠️ Erreur lors de la fermeture de MongoDB:", err)
		return
	}
	log.Println("📡 Connexion MongoDB fermée")
}

// EnsureIndexes สร้าง index ที่ schema เดิมประกาศไว้
// unique index ของ email เป็นตัวกันแข่ง insert ซ้ำหลังผ่าน pre-check
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	students := db.Collection(StudentCollection)
	_, err := students.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "nom", Value: 1}, {Key: "prenom", Value: 1}}},
		{Keys: bson.D{{Key: "niveau", Value: 1}, {Key: "classe", Value: 1}}},
	})
	if err != nil {
		return err
	}

	jobs := db.Collection(JobApplicationCollection)
	_, err = jobs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "posteSouhaite", Value: 1}}},
		{Keys: bson.D{{Key: "statut", Value: 1}}},
		{Keys: bson.D{{Key: "dateCandidature", Value: -1}}},
	})
	return err
}
