package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productSequenceID = "products"

// MongoProductRepository stores products in a MongoDB collection keyed by
// integer _id. New ids come from a counters collection.
type MongoProductRepository struct {
	products *mongo.Collection
	counters *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		products: db.Collection("products"),
		counters: db.Collection("counters"),
	}
}

type productDocument struct {
	ID          int64                `bson:"_id"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Category    string               `bson:"category"`
	Price       primitive.Decimal128 `bson:"price"`
	ImageKey    string               `bson:"image_key,omitempty"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func toProductDocument(p *models.Product) (productDocument, error) {
	price, err := primitive.ParseDecimal128(p.Price.String())
	if err != nil {
		return productDocument{}, fmt.Errorf("encode price %s: %w", p.Price, err)
	}
	return productDocument{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       price,
		ImageKey:    p.ImageKey,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (d productDocument) toProduct() (models.Product, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return models.Product{}, fmt.Errorf("decode price for product %d: %w", d.ID, err)
	}
	return models.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Price:       price,
		ImageKey:    d.ImageKey,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

// EnsureIndexes creates the category index used by listing filters.
func (r *MongoProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.products.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "category", Value: 1}}})
	return err
}

func (r *MongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.products.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.toProduct()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var doc productDocument
	err := r.products.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.Wrap(ErrProductNotFound, err)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	p, err := doc.toProduct()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoProductRepository) Save(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.UpdatedAt = now

	if product.ID == 0 {
		id, err := r.nextID(ctx)
		if err != nil {
			return err
		}
		product.ID = id
		product.CreatedAt = now

		doc, err := toProductDocument(product)
		if err != nil {
			return err
		}
		if _, err := r.products.InsertOne(ctx, doc); err != nil {
			return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
		}
		return nil
	}

	doc, err := toProductDocument(product)
	if err != nil {
		return err
	}
	res, err := r.products.UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{"$set": bson.M{
		"name":        doc.Name,
		"description": doc.Description,
		"category":    doc.Category,
		"price":       doc.Price,
		"image_key":   doc.ImageKey,
		"updated_at":  doc.UpdatedAt,
	}})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.Wrap(ErrProductNotFound, mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id int64) (*models.Product, error) {
	var doc productDocument
	err := r.products.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	p, err := doc.toProduct()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoProductRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": productSequenceID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrDatabaseQuery, fmt.Errorf("allocate product id: %w", err))
	}
	return counter.Seq, nil
}
