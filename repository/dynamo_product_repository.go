package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/models"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the subset of the DynamoDB client used by the adapter.
type DynamoAPI interface {
	dynamodb.ScanAPIClient
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// sequenceItemID is the reserved key of the id counter item.
const sequenceItemID = 0

// DynamoProductRepository stores products in a table keyed by numeric
// `product_id`. Item 0 holds the id sequence.
type DynamoProductRepository struct {
	client DynamoAPI
	table  string
}

func NewDynamoProductRepository(client DynamoAPI, table string) *DynamoProductRepository {
	return &DynamoProductRepository{client: client, table: table}
}

type ddbProduct struct {
	ProductID   int64  `dynamodbav:"product_id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category"`
	Price       string `dynamodbav:"price"`
	ImageKey    string `dynamodbav:"image_key,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

func toDDBProduct(p *models.Product) ddbProduct {
	return ddbProduct{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price.String(),
		ImageKey:    p.ImageKey,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (d ddbProduct) toProduct() (models.Product, error) {
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return models.Product{}, fmt.Errorf("decode price for product %d: %w", d.ProductID, err)
	}
	p := models.Product{
		ID:          d.ProductID,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Price:       price,
		ImageKey:    d.ImageKey,
	}
	if t, err := time.Parse(time.RFC3339, d.CreatedAt); err == nil {
		p.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, d.UpdatedAt); err == nil {
		p.UpdatedAt = t
	}
	return p, nil
}

func productKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"product_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

// FindAll scans the table. The sequence item is skipped.
func (r *DynamoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{TableName: sdkaws.String(r.table)})

	var products []models.Product
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, fmt.Errorf("scan page failed: %w", err))
		}
		for _, item := range page.Items {
			var dp ddbProduct
			if err := attributevalue.UnmarshalMap(item, &dp); err != nil {
				return nil, fmt.Errorf("unmarshal item: %w", err)
			}
			if dp.ProductID == sequenceItemID {
				continue
			}
			p, err := dp.toProduct()
			if err != nil {
				return nil, err
			}
			products = append(products, p)
		}
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *DynamoProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{TableName: sdkaws.String(r.table), Key: productKey(id)})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, fmt.Errorf("dynamodb GetItem failed: %w", err))
	}
	if len(out.Item) == 0 || id == sequenceItemID {
		return nil, apperrors.Wrap(ErrProductNotFound, fmt.Errorf("product %d", id))
	}
	var dp ddbProduct
	if err := attributevalue.UnmarshalMap(out.Item, &dp); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	p, err := dp.toProduct()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save uses conditional puts so an update never creates a product and an
// insert never overwrites one.
func (r *DynamoProductRepository) Save(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.UpdatedAt = now

	condition := "attribute_exists(product_id)"
	if product.ID == 0 {
		id, err := r.nextID(ctx)
		if err != nil {
			return err
		}
		product.ID = id
		product.CreatedAt = now
		condition = "attribute_not_exists(product_id)"
	}

	item, err := attributevalue.MarshalMap(toDDBProduct(product))
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           sdkaws.String(r.table),
		Item:                item,
		ConditionExpression: sdkaws.String(condition),
	})
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return apperrors.Wrap(ErrProductNotFound, err)
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, fmt.Errorf("dynamodb PutItem failed: %w", err))
	}
	return nil
}

func (r *DynamoProductRepository) Delete(ctx context.Context, id int64) (*models.Product, error) {
	if id == sequenceItemID {
		return nil, nil
	}
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    sdkaws.String(r.table),
		Key:          productKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, fmt.Errorf("delete item failed: %w", err))
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	var dp ddbProduct
	if err := attributevalue.UnmarshalMap(out.Attributes, &dp); err != nil {
		return nil, fmt.Errorf("unmarshal deleted item: %w", err)
	}
	p, err := dp.toProduct()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DynamoProductRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        sdkaws.String(r.table),
		Key:              productKey(sequenceItemID),
		UpdateExpression: sdkaws.String("ADD seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrDatabaseQuery, fmt.Errorf("allocate product id: %w", err))
	}
	var seq struct {
		Seq int64 `dynamodbav:"seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &seq); err != nil {
		return 0, fmt.Errorf("decode sequence: %w", err)
	}
	return seq.Seq, nil
}
