package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

const reconnectDelay = time.Second

type redisEventListener struct {
	logger      *logrus.Logger
	cache       Client
	mu          sync.RWMutex
	subscribers map[reflect.Type][]interface{}
	registry    map[string]reflect.Type
}

func NewRedisEventListener(
	logger *logrus.Logger,
	cache Client,
	registry map[string]reflect.Type,
) EventListener {
	return &redisEventListener{
		logger:      logger,
		cache:       cache,
		subscribers: make(map[reflect.Type][]interface{}),
		registry:    registry,
	}
}

func RegisterEventSubscriber[T event.Event](listener EventListener, subscriber EventSubscriber[T]) {
	var evt T
	listener.Register(reflect.TypeOf(evt), subscriber)
}

func (r *redisEventListener) Register(eventType reflect.Type, subscriber interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers[eventType] = append(r.subscribers[eventType], subscriber)
}

// Listen blocks until ctx is done, resubscribing whenever the pubsub connection drops.
func (r *redisEventListener) Listen(ctx context.Context, channels ...channel.Channel) {
	channelNames := make([]string, 0, len(channels))
	for _, ch := range channels {
		channelNames = append(channelNames, string(ch))
	}

	for {
		r.listenOnce(ctx, channelNames)
		if ctx.Err() != nil {
			r.logger.Info("redis pubsub listener shutting down")
			return
		}
		r.logger.Warn("redis pubsub disconnected, reconnecting")
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (r *redisEventListener) listenOnce(ctx context.Context, channelNames []string) {
	pubSub := r.cache.RedisClient().Subscribe(ctx, channelNames...)
	defer func() { _ = pubSub.Close() }()

	if _, err := pubSub.Receive(ctx); err != nil {
		r.logger.WithError(err).Error("failed to subscribe to redis channels")
		return
	}
	r.logger.WithField("channels", channelNames).Debug("redis pubsub connected")

	messages := pubSub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			r.handleMessage(ctx, msg.Payload)
		}
	}
}

func (r *redisEventListener) handleMessage(ctx context.Context, payload string) {
	var envelope RedisMessage
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		r.logger.WithError(err).Error("error decoding redis message")
		return
	}

	concreteType, err := r.eventType(envelope.Type)
	if err != nil {
		r.logger.WithError(err).Warn("ignoring redis message")
		return
	}

	eventPtr := reflect.New(concreteType)
	if err := json.Unmarshal(envelope.Event, eventPtr.Interface()); err != nil {
		r.logger.WithError(err).Error("error unmarshalling event data into concrete type")
		return
	}
	r.notifySubscribers(ctx, concreteType, eventPtr.Elem())
}

func (r *redisEventListener) notifySubscribers(ctx context.Context, eventType reflect.Type, eventValue reflect.Value) {
	r.mu.RLock()
	subscribers := r.subscribers[eventType]
	r.mu.RUnlock()

	for _, sub := range subscribers {
		method := reflect.ValueOf(sub).MethodByName("OnEvent")
		if !method.IsValid() {
			continue
		}
		results := method.Call([]reflect.Value{reflect.ValueOf(ctx), eventValue})
		if len(results) == 0 || results[0].IsNil() {
			continue
		}
		if err, ok := results[0].Interface().(error); ok {
			r.logger.WithError(err).WithField("event", eventType.Name()).Error("event subscriber failed")
		}
	}
}

func (r *redisEventListener) eventType(name string) (reflect.Type, error) {
	concreteType, ok := r.registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", name)
	}
	return concreteType, nil
}
