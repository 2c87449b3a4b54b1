package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestIsNamespaceNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"code 26", mongo.CommandError{Code: 26, Message: "ns does not exist"}, true},
		{"name only", mongo.CommandError{Name: "NamespaceNotFound"}, true},
		{"wrapped", fmt.Errorf("list: %w", mongo.CommandError{Code: 26}), true},
		{"unauthorized", mongo.CommandError{Code: 13, Name: "Unauthorized"}, false},
		{"plain error", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNamespaceNotFound(tt.err); got != tt.want {
				t.Errorf("isNamespaceNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// An unreachable server must fail the reconcile rather than fall through
// to index creation.
func TestEnsureIndexSet_ListFailureIsReturned(t *testing.T) {
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(200*time.Millisecond))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coll := client.Database("academic").Collection("classes")
	err = ensureIndexSet(ctx, coll, Desired["classes"], zap.NewNop())
	if err == nil {
		t.Fatal("expected an error when indexes cannot be listed")
	}
	if !strings.Contains(err.Error(), "list indexes") {
		t.Errorf("error should come from listing indexes, got %v", err)
	}
}
