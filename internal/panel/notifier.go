package panel

import "go.uber.org/zap"

// notice is the payload dashboards render as a toast.
type notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Notifier delivers submission-flow messages to the dashboards through
// the hub, mirroring each one to the log.
type Notifier struct {
	hub    *Hub
	logger *zap.Logger
}

func NewNotifier(hub *Hub, logger *zap.Logger) *Notifier {
	return &Notifier{hub: hub, logger: logger}
}

func (n *Notifier) Success(msg string) { n.emit("success", msg) }
func (n *Notifier) Error(msg string)   { n.emit("error", msg) }
func (n *Notifier) Info(msg string)    { n.emit("info", msg) }

func (n *Notifier) emit(level, msg string) {
	n.logger.Info("notice", zap.String("level", level), zap.String("message", msg))
	n.hub.Broadcast("notice", notice{Level: level, Message: msg})
}
