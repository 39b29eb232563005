package kafka

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
)

var _ port.ActivityProcessor = (*ActivityProcessor)(nil)
var _ port.ActivityReader = ActivityView{}

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor].
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// A shopEventCodec used for serde [schema.ShopEventV1]
type shopEventCodec struct {
	serde Serde
}

func newShopEventCodec(s Serde) shopEventCodec {
	return shopEventCodec{s}
}

func (c shopEventCodec) Encode(v any) ([]byte, error) {
	const op = "shopEventCodec.Encode"
	if _, ok := v.(schema.ShopEventV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c shopEventCodec) Decode(data []byte) (any, error) {
	const op = "shopEventCodec.Decode"
	var s schema.ShopEventV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// An activityCount is the number of shop events seen for a client.
type activityCount int64

type activityCountCodec struct{}

func (activityCountCodec) Encode(v any) ([]byte, error) {
	const op = "activityCountCodec.Encode"
	c, ok := v.(activityCount)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return strconv.AppendInt([]byte(nil), int64(c), 10), nil
}

func (activityCountCodec) Decode(data []byte) (any, error) {
	const op = "activityCountCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return activityCount(n), nil
}

// An ActivityProcessor counts shop events per client from the events
// stream into a group table.
type ActivityProcessor struct {
	opPrefix string
	proc     processor
}

func NewActivityProc(
	seedBrokers []string,
	inputStream string,
	groupTable string,
	shopEventSerde Serde,
) (*ActivityProcessor, error) {
	const op = "NewActivityProc"

	var p ActivityProcessor

	gg := goka.DefineGroup(goka.Group(groupTable),
		goka.Input(
			goka.Stream(inputStream),
			newShopEventCodec(shopEventSerde),
			p.processFn,
		),
		goka.Persist(activityCountCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.opPrefix = "ActivityProcessor"
	p.proc = processor{
		opPrefix: p.opPrefix,
		gp:       gp,
	}

	return &p, nil
}

func (p *ActivityProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *ActivityProcessor) Close() {
	p.proc.close()
}

func (p *ActivityProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"
	log := slog.With("op", makeOp(p.opPrefix, op))

	event, _ := msg.(schema.ShopEventV1)

	var count activityCount
	if v := ctx.Value(); v != nil {
		count, _ = v.(activityCount)
	}
	count++
	ctx.SetValue(count)

	log.Info(
		"client activity updated",
		"clientID", event.ClientID,
		"kind", event.Kind,
		"events", int64(count),
	)
}

// An ActivityView reads the activity group table.
type ActivityView struct {
	gv *goka.View
}

func NewActivityView(
	seedBrokers []string, groupTable string,
) (ActivityView, error) {
	const op = "NewActivityView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(groupTable)),
		activityCountCodec{},
	)
	if err != nil {
		return ActivityView{}, opErr(err, op)
	}

	return ActivityView{gv}, nil
}

func (v ActivityView) Run(ctx context.Context) {
	const op = "ActivityView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

// EventsFor returns the number of recorded shop events for a client.
func (v ActivityView) EventsFor(clientID string) (int64, error) {
	const op = "ActivityView.EventsFor"

	val, err := v.gv.Get(clientID)
	if err != nil {
		return 0, opErr(err, op)
	}
	if val == nil {
		return 0, nil
	}

	count, ok := val.(activityCount)
	if !ok {
		return 0, opErr(ErrInvalidValueType, op)
	}
	return int64(count), nil
}
