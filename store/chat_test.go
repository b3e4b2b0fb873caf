package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chw708/teresa-api/schema"
)

type ChatTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        HealthStore
}

func NewChatTestSuite(connURI, dbName string) *ChatTestSuite {
	return &ChatTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ChatTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.Connect(context.Background(), opts)
	if nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}

	store, err := NewMongoStore(s.connURI, s.testDBName)
	if err != nil {
		s.T().Fatalf("create store with error: %s", err.Error())
	}
	s.store = store
}

func (s *ChatTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ChatTestSuite) appendMessage(owner string, role schema.ChatRole, text string, ts int64) {
	s.NoError(s.store.AppendChatMessage(schema.ChatMessage{
		ID:        uuid.New().String(),
		Owner:     owner,
		Role:      role,
		Text:      text,
		Timestamp: ts,
	}))
}

func (s *ChatTestSuite) TestListChatHistoryChronological() {
	base := time.Now().UnixMilli()
	s.appendMessage("account-a", schema.ChatRoleUser, "hello", base)
	s.appendMessage("account-a", schema.ChatRoleAssistant, "Hi, good to see you today.", base+40)
	s.appendMessage("account-a", schema.ChatRoleUser, "I slept badly", base+9000)

	messages, err := s.store.ListChatHistory("account-a", 0)
	s.NoError(err)
	s.Len(messages, 3)
	s.Equal("hello", messages[0].Text)
	s.Equal("I slept badly", messages[2].Text)
}

func (s *ChatTestSuite) TestListChatHistoryKeepsExchangeOrderOnEqualTimestamps() {
	// a question and its reply are written back to back and can land on
	// the same millisecond
	ts := time.Now().UnixMilli()
	s.appendMessage("account-b", schema.ChatRoleUser, "am I doing ok?", ts)
	s.appendMessage("account-b", schema.ChatRoleAssistant, "You are doing fine.", ts)

	messages, err := s.store.ListChatHistory("account-b", 0)
	s.NoError(err)
	s.Len(messages, 2)
	s.Equal(schema.ChatRoleUser, messages[0].Role)
	s.Equal(schema.ChatRoleAssistant, messages[1].Role)
}

func (s *ChatTestSuite) TestListChatHistoryLimitKeepsNewest() {
	base := time.Now().UnixMilli()
	for i := 0; i < 5; i++ {
		role := schema.ChatRoleUser
		if i%2 == 1 {
			role = schema.ChatRoleAssistant
		}
		s.appendMessage("account-c", role, "message", base+int64(i)*100)
	}

	messages, err := s.store.ListChatHistory("account-c", 2)
	s.NoError(err)
	s.Len(messages, 2)
	s.Equal(base+300, messages[0].Timestamp)
	s.Equal(base+400, messages[1].Timestamp)
}

func (s *ChatTestSuite) TestListChatHistoryScopedToOwner() {
	ts := time.Now().UnixMilli()
	s.appendMessage("account-d", schema.ChatRoleUser, "mine", ts)
	s.appendMessage("account-e", schema.ChatRoleUser, "theirs", ts)

	messages, err := s.store.ListChatHistory("account-d", 0)
	s.NoError(err)
	s.Len(messages, 1)
	s.Equal("mine", messages[0].Text)
}

func TestChatTestSuite(t *testing.T) {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("test")

	connURI := viper.GetString("mongodb_conn")
	if connURI == "" {
		t.Skip("skip mongodb tests: TEST_MONGODB_CONN not set")
	}

	suite.Run(t, NewChatTestSuite(connURI, "test-teresa-chat"))
}
