package requests

import (
	"api/database"
	"api/logger"
	"api/utils"
	"context"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var wsClients = make(map[*websocket.Conn]bool)
var wsMutex sync.Mutex

func broadcast(msg any) {
	wsMutex.Lock()
	defer wsMutex.Unlock()
	for client := range wsClients {
		err := client.WriteJSON(msg)
		if err != nil {
			client.Close()
			delete(wsClients, client)
		}
	}
}

// BroadcastSnapshot pushes the full current request set to every connected
// client. Subscribers always receive the whole matching set, never a diff,
// so readers can recompute statistics from scratch on each push.
func BroadcastSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	opts := options.Client().ApplyURI(os.Getenv(utils.MONGODB_URI))
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		logger.Log().Warn("snapshot broadcast skipped", zap.Error(err))
		return
	}
	defer mongoClient.Disconnect(ctx)

	snapshot, err := FetchAll(ctx, mongoClient)
	if err != nil {
		logger.Log().Warn("snapshot broadcast skipped", zap.Error(err))
		return
	}

	broadcast(map[string]any{
		"action":   "snapshot",
		"requests": snapshot,
	})
}

func RequestWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Unable to upgrade to websocket", http.StatusInternalServerError)
		return
	}
	defer conn.Close()

	wsMutex.Lock()
	wsClients[conn] = true
	wsMutex.Unlock()

	// Each new subscriber immediately gets the current set.
	go BroadcastSnapshot()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	wsMutex.Lock()
	delete(wsClients, conn)
	wsMutex.Unlock()
}
