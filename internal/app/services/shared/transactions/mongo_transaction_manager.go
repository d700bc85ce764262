package transactions

import (
	"context"
	"sync"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	transactionManagerInstance contracts.TransactionManager
	onceTransactionManager     sync.Once
)

type mongoTransactionManager struct {
	client *mongo.Client
	Log    *zap.Logger
}

func NewMongoTransactionManager(client *mongo.Client, logger *zap.Logger) contracts.TransactionManager {
	onceTransactionManager.Do(func() {
		instance := &mongoTransactionManager{
			client: client,
			Log:    logger,
		}
		transactionManagerInstance = instance
	})
	return transactionManagerInstance
}

// WithTransaction starts a session and runs fn inside it. Repository calls
// made with the session context join the same transaction; any error from fn
// aborts it.
func (m *mongoTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("mongoTransactionManager.WithTransaction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := m.client.StartSession()
	if err != nil {
		m.Log.Error("mongoTransactionManager.WithTransaction error starting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		m.Log.Error("mongoTransactionManager.WithTransaction transaction aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if _, ok := err.(*exceptions.CustomError); ok {
			return err
		}
		return exceptions.ErrMongoDBTransaction(err)
	}

	m.Log.Info("mongoTransactionManager.WithTransaction committed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
