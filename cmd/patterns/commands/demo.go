package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/patternforge/patterns/cmd/patterns/opts"
	"github.com/patternforge/patterns/pkg/adapter"
	"github.com/patternforge/patterns/pkg/bridge"
	"github.com/patternforge/patterns/pkg/builder"
	"github.com/patternforge/patterns/pkg/composite"
	"github.com/patternforge/patterns/pkg/decorator"
	"github.com/patternforge/patterns/pkg/facade"
	"github.com/patternforge/patterns/pkg/factory"
	"github.com/patternforge/patterns/pkg/flyweight"
	"github.com/patternforge/patterns/pkg/log"
	"github.com/patternforge/patterns/pkg/prototype"
	"github.com/patternforge/patterns/pkg/proxy"
	"github.com/patternforge/patterns/pkg/singleton"
)

// demoFunc runs one pattern walkthrough against the user logger.
type demoFunc func(ctx context.Context, ui *log.Logger) error

var demos = map[string]demoFunc{
	"composite": demoComposite,
	"factory":   demoFactory,
	"builder":   demoBuilder,
	"prototype": demoPrototype,
	"singleton": demoSingleton,
	"adapter":   demoAdapter,
	"bridge":    demoBridge,
	"decorator": demoDecorator,
	"facade":    demoFacade,
	"flyweight": demoFlyweight,
	"proxy":     demoProxy,
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDemoCmd creates a new demo command
func NewDemoCmd(opts *opts.RootOpts) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "demo [pattern]",
		Short: "Run a pattern walkthrough",
		Long: "Demo runs a short walkthrough of one design pattern. Available:\n  " +
			strings.Join(demoNames(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "demo").Logger().WithContext(ctx)

			if all {
				g, gctx := errgroup.WithContext(ctx)
				for _, name := range demoNames() {
					fn := demos[name]
					g.Go(func() error {
						return fn(gctx, opts.UserLogger)
					})
				}
				return g.Wait()
			}

			if len(args) == 0 {
				return errors.Errorf("a pattern name (or --all) is required; available: %s", strings.Join(demoNames(), ", "))
			}
			fn, ok := demos[args[0]]
			if !ok {
				return errors.Errorf("unknown pattern %q; available: %s", args[0], strings.Join(demoNames(), ", "))
			}
			return fn(ctx, opts.UserLogger)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every pattern walkthrough")
	return cmd
}

func demoComposite(ctx context.Context, ui *log.Logger) error {
	ui.Header("composite")

	tree := composite.NewTree()
	root := tree.NewContainer("root")
	a := tree.NewLeaf("a.txt", []byte("hi"))
	sub := tree.NewContainer("sub")
	b := tree.NewLeaf("b.txt", []byte("x"))
	if err := tree.AddChild(root, a); err != nil {
		return err
	}
	if err := tree.AddChild(root, sub); err != nil {
		return err
	}
	if err := tree.AddChild(sub, b); err != nil {
		return err
	}

	result, err := tree.Evaluate(root)
	if err != nil {
		return err
	}
	ui.Step("evaluate", result)

	tree.RemoveChild(sub, b)
	result, err = tree.Evaluate(root)
	if err != nil {
		return err
	}
	ui.Step("after remove", result)
	return nil
}

func demoFactory(ctx context.Context, ui *log.Logger) error {
	ui.Header("abstract factory")
	for _, style := range []string{factory.StyleModern, factory.StyleVictorian, factory.StyleArtDeco} {
		f, err := factory.For(style)
		if err != nil {
			return err
		}
		ui.Stepf(style, "chair purchasable: %v", f.NewChair().CanPurchase())
	}
	return nil
}

func demoBuilder(ctx context.Context, ui *log.Logger) error {
	ui.Header("builder")
	b := builder.NewCarBuilder()

	builder.Director{}.ConstructSportsCar(b)
	car, err := b.Product()
	if err != nil {
		return err
	}
	ui.Stepf("sports car", "%d seats, %s, %s", car.Seats, car.Engine, car.Color)

	builder.Director{}.ConstructSUV(b)
	car, err = b.Product()
	if err != nil {
		return err
	}
	ui.Stepf("suv", "%d seats, %s, %s", car.Seats, car.Engine, car.Color)
	return nil
}

func demoPrototype(ctx context.Context, ui *log.Logger) error {
	ui.Header("prototype")
	original := prototype.NewCircle(10, "blue")
	clone := original.Clone()
	ui.Stepf("clone", "area %.2f, color %s, distinct instance: %v",
		clone.Area(), clone.Color(), clone != prototype.Shape(original))
	return nil
}

func demoSingleton(ctx context.Context, ui *log.Logger) error {
	ui.Header("singleton")
	s1 := singleton.Instance()
	s2 := singleton.Instance()
	ui.Stepf("instance", "same instance: %v", s1 == s2)
	return nil
}

func demoAdapter(ctx context.Context, ui *log.Logger) error {
	ui.Header("adapter")
	hole := adapter.NewRoundHole(5)
	ui.Stepf("round peg r=5", "fits: %v", hole.Fits(adapter.NewRoundPeg(5)))
	ui.Stepf("square peg w=5", "fits: %v", hole.Fits(adapter.NewSquarePegAdapter(adapter.NewSquarePeg(5))))
	ui.Stepf("square peg w=10", "fits: %v", hole.Fits(adapter.NewSquarePegAdapter(adapter.NewSquarePeg(10))))
	return nil
}

func demoBridge(ctx context.Context, ui *log.Logger) error {
	ui.Header("bridge")
	tv := bridge.NewTV()
	remote := bridge.NewAdvancedRemote(tv)
	remote.TogglePower()
	remote.VolumeUp()
	remote.ChannelUp()
	ui.Stepf("tv", "on: %v, volume %.0f, channel %s", tv.IsEnabled(), tv.Volume(), tv.Channel())
	remote.Mute()
	ui.Stepf("after mute", "volume %.0f", tv.Volume())
	return nil
}

func demoDecorator(ctx context.Context, ui *log.Logger) error {
	ui.Header("decorator")
	stack := decorator.NewSlackDecorator(
		decorator.NewSMSDecorator(decorator.NewEmailNotifier("ops@example.com"), "+15550100"),
		"#alerts")
	for _, delivery := range stack.Send("deploy finished") {
		ui.Step("send", delivery)
	}
	return nil
}

func demoFacade(ctx context.Context, ui *log.Logger) error {
	ui.Header("facade")
	for _, line := range facade.NewComputer().Start(ctx) {
		ui.Step("boot", line)
	}
	return nil
}

func demoFlyweight(ctx context.Context, ui *log.Logger) error {
	ui.Header("flyweight")
	pool, err := flyweight.NewPool(16)
	if err != nil {
		return err
	}
	c1 := pool.Get("9", "h")
	c2 := pool.Get("9", "h")
	ui.Stepf("intern", "%s shared: %v, pool size %d", c1, c1 == c2, pool.Len())
	return nil
}

// demoFetcher stands in for the GitHub-backed subject so the walkthrough
// works offline.
type demoFetcher struct {
	calls int
}

func (f *demoFetcher) FetchDescription(ctx context.Context, owner, repo string) (string, error) {
	f.calls++
	return fmt.Sprintf("pretend description of %s/%s", owner, repo), nil
}

func demoProxy(ctx context.Context, ui *log.Logger) error {
	ui.Header("proxy")
	subject := &demoFetcher{}
	caching, err := proxy.NewCachingFetcher(subject, 8)
	if err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if _, err := caching.FetchDescription(ctx, "golang", "go"); err != nil {
			return err
		}
	}
	ui.Stepf("fetch x3", "subject hit %d time(s)", subject.calls)
	return nil
}
