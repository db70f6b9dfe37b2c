package repository

import (
	"context"
	"time"

	"lazarus_guide/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultGuideSummariesTableName = "guide_summaries"

type guideSummaryItem struct {
	ID                  int    `dynamodbav:"id"`
	HospitalID          string `dynamodbav:"hospital_id"`
	NumeroGuiaPrestador string `dynamodbav:"numero_guia_prestador"`
	TipoGuia            string `dynamodbav:"tipo_guia"`
	State               string `dynamodbav:"state"`
	AuditStatus         string `dynamodbav:"audit_status"`
	ValorTotalGeral     string `dynamodbav:"valor_total_geral"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// GuideReadModelDynamoRepository keeps the denormalized guide projections in
// DynamoDB (CQRS read side).
//
// Table requirements:
//   - PK: id (number)
//
// Writes are unconditional puts: the projection is last-writer-wins and can
// always be rebuilt from the relational store.
type GuideReadModelDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGuideReadModel = (*GuideReadModelDynamoRepository)(nil)

func NewGuideReadModelDynamoRepository(ddb *dynamodb.Client) *GuideReadModelDynamoRepository {
	return &GuideReadModelDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GUIDES_READMODEL_TABLE", defaultGuideSummariesTableName),
	}
}

func (r *GuideReadModelDynamoRepository) UpsertGuideSummary(ctx context.Context, doc interfaces.GuideDocument) error {
	it := guideSummaryItem{
		ID:                  doc.ID,
		HospitalID:          doc.HospitalID,
		NumeroGuiaPrestador: doc.NumeroGuiaPrestador,
		TipoGuia:            doc.TipoGuia,
		State:               string(doc.State),
		AuditStatus:         string(doc.AuditStatus),
		ValorTotalGeral:     doc.ValorTotalGeral.String(),
		UpdatedAt:           doc.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *GuideReadModelDynamoRepository) Ping(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	return err
}
