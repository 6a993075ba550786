// deskctl - консольный клиент сервиса бронирования столов
//
//	deskctl [--url URL] [--token JWT] [--timezone TZ] <command> [flags]
//
// Команды: desks [load|rename|delete], slots, book, my, cancel, cancel-all.
// Токен можно передать через DESK_TOKEN.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"

	"github.com/m04kA/SMC-DeskService/internal/availability"
	"github.com/m04kA/SMC-DeskService/internal/domain"
	"github.com/m04kA/SMC-DeskService/pkg/deskclient"
	"github.com/m04kA/SMC-DeskService/pkg/logger"
	"github.com/m04kA/SMC-DeskService/pkg/timefmt"
)

type app struct {
	client      *deskclient.Client
	store       *deskclient.DeskStore
	coordinator *deskclient.Coordinator
	location    *time.Location
	out         io.Writer
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		baseURL  string
		token    string
		timezone string
		timeout  time.Duration
		logLevel string
	)

	global := pflag.NewFlagSet("deskctl", pflag.ContinueOnError)
	global.StringVar(&baseURL, "url", "http://localhost:8080", "адрес сервиса")
	global.StringVar(&token, "token", os.Getenv("DESK_TOKEN"), "JWT пользователя")
	global.StringVar(&timezone, "timezone", "Local", "зона бронирования, должна совпадать с зоной сервиса")
	global.DurationVar(&timeout, "timeout", 10*time.Second, "таймаут запроса")
	global.StringVar(&logLevel, "log-level", "warn", "уровень логирования")
	global.SetInterspersed(false)
	if err := global.Parse(args); err != nil {
		return err
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.PrintDefaults()
		return errors.New("command is required: desks, slots, book, my, cancel, cancel-all")
	}

	loc, err := timefmt.LoadLocation(timezone)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log := logger.NewWithWriter(os.Stderr, level)

	client := deskclient.NewClient(baseURL, timeout, loc, log, deskclient.WithToken(token))
	store := deskclient.NewDeskStore(client)
	a := &app{
		client:      client,
		store:       store,
		coordinator: deskclient.NewCoordinator(client, store, log),
		location:    loc,
		out:         os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	command, cmdArgs := rest[0], rest[1:]
	switch command {
	case "desks":
		return a.desks(ctx, cmdArgs)
	case "slots":
		return a.slots(ctx, cmdArgs)
	case "book":
		return a.book(ctx, cmdArgs)
	case "my":
		return a.my(ctx, cmdArgs)
	case "cancel":
		return a.cancel(ctx, cmdArgs)
	case "cancel-all":
		return a.cancelAll(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// desks без аргументов печатает столы, подкоманды load, rename, delete меняют их
func (a *app) desks(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if err := a.store.Refresh(ctx); err != nil {
			return err
		}
		a.printDesks(a.store.Snapshot())
		return nil
	}

	sub, subArgs := args[0], args[1:]
	switch sub {
	case "load":
		if len(subArgs) == 0 {
			return errors.New("desk names are required")
		}
		created, err := a.client.LoadDesks(ctx, subArgs)
		if err != nil {
			return err
		}
		a.printDesks(created)
	case "rename":
		var deskID, name string
		fs := pflag.NewFlagSet("desks rename", pflag.ContinueOnError)
		fs.StringVar(&deskID, "desk", "", "ID стола")
		fs.StringVar(&name, "name", "", "новое название")
		if err := fs.Parse(subArgs); err != nil {
			return err
		}
		if err := a.client.RenameDesk(ctx, deskID, name); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "desk %s renamed to %q\n", deskID, name)
	case "delete":
		if len(subArgs) != 1 {
			return errors.New("exactly one desk id is required")
		}
		if err := a.client.DeleteDesk(ctx, subArgs[0]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "desk %s deleted\n", subArgs[0])
	default:
		return fmt.Errorf("unknown desks subcommand %q: load, rename, delete", sub)
	}
	return nil
}

func (a *app) slots(ctx context.Context, args []string) error {
	var deskID, date, mode string
	fs := pflag.NewFlagSet("slots", pflag.ContinueOnError)
	fs.StringVar(&deskID, "desk", "", "ID стола")
	fs.StringVar(&date, "date", time.Now().In(a.location).Format(timefmt.DateLayout), "день или любой день месяца, YYYY-MM-DD")
	fs.StringVar(&mode, "mode", string(domain.SlotModeHourly), "hourly или daily")
	if err := fs.Parse(args); err != nil {
		return err
	}

	day, slotMode, err := a.parseGrid(date, mode)
	if err != nil {
		return err
	}

	slots, err := a.client.GetDeskSlots(ctx, deskID, day, slotMode)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FROM\tTO\tAVAILABLE")
	for _, s := range slots {
		fmt.Fprintf(w, "%s\t%s\t%t\n", timefmt.Format(s.From, a.location), timefmt.Format(s.To, a.location), s.IsAvailable)
	}
	return w.Flush()
}

// book выбирает слоты сетки по номерам: час начала (hourly) или день месяца (daily)
// По умолчанию каждый непрерывный интервал бронируется отдельным запросом,
// с --atomic весь выбор уходит одним запросом и создается целиком или никак
func (a *app) book(ctx context.Context, args []string) error {
	var (
		deskID, date, mode string
		picks              []int
		atomic             bool
	)
	fs := pflag.NewFlagSet("book", pflag.ContinueOnError)
	fs.StringVar(&deskID, "desk", "", "ID стола")
	fs.StringVar(&date, "date", time.Now().In(a.location).Format(timefmt.DateLayout), "день или любой день месяца, YYYY-MM-DD")
	fs.StringVar(&mode, "mode", string(domain.SlotModeHourly), "hourly или daily")
	fs.IntSliceVar(&picks, "slot", nil, "час начала (hourly) или день месяца (daily), можно несколько")
	fs.BoolVar(&atomic, "atomic", false, "одним запросом: все слоты или ни одного")
	if err := fs.Parse(args); err != nil {
		return err
	}

	day, slotMode, err := a.parseGrid(date, mode)
	if err != nil {
		return err
	}

	var selected []domain.TimeSlot
	for _, s := range availability.GenerateSlots(slotMode, day, nil) {
		key := s.From.Hour()
		if slotMode == domain.SlotModeDaily {
			key = s.From.Day()
		}
		if slices.Contains(picks, key) {
			selected = append(selected, s.TimeSlot())
		}
	}
	if len(selected) != len(picks) {
		return fmt.Errorf("some of --slot %v are not in the %s grid", picks, slotMode)
	}

	if atomic {
		created, err := a.client.BookSlots(ctx, deskID, slotMode, selected)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "booked %d reservations\n", len(created))
		return a.desks(ctx, nil)
	}

	created, err := a.coordinator.Book(ctx, slotMode, deskID, selected)
	if err != nil {
		var batchErr *deskclient.BatchError
		if errors.As(err, &batchErr) {
			for _, run := range batchErr.Runs {
				status := "ok, cancelled"
				if run.Err != nil {
					status = run.Err.Error()
				}
				fmt.Fprintf(a.out, "%s - %s: %s\n",
					timefmt.Format(run.Request.DateFrom, a.location), timefmt.Format(run.Request.DateTo, a.location), status)
			}
		}
		return err
	}

	fmt.Fprintf(a.out, "booked %d reservations\n", len(created))
	a.printDesks(a.store.Snapshot())
	return nil
}

func (a *app) my(ctx context.Context, args []string) error {
	var grouped bool
	fs := pflag.NewFlagSet("my", pflag.ContinueOnError)
	fs.BoolVar(&grouped, "grouped", false, "группировать по столу и дню")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	if grouped {
		groups, err := a.client.ListGroupedReservations(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "DATE\tDESK\tSLOTS\tIDS")
		for _, g := range groups {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", g.Date.Format(timefmt.DateLayout), g.DeskName,
				a.formatSlots(g.ReservedSlots), strings.Join(g.ReservationIDs, ","))
		}
		return w.Flush()
	}

	reservations, err := a.client.ListReservations(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "ID\tDESK\tSLOTS")
	for _, r := range reservations {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.DeskID, a.formatSlots(r.ReservedSlots))
	}
	return w.Flush()
}

// cancel отменяет бронирования по ID или целую группу (--desk и --date)
// Отмена идёт запросом на каждый ID, с --batch одним запросом в одной транзакции
func (a *app) cancel(ctx context.Context, args []string) error {
	var (
		deskID, date string
		batch        bool
	)
	fs := pflag.NewFlagSet("cancel", pflag.ContinueOnError)
	fs.StringVar(&deskID, "desk", "", "ID стола группы")
	fs.StringVar(&date, "date", "", "день группы, YYYY-MM-DD")
	fs.BoolVar(&batch, "batch", false, "отменить перечисленные ID одним запросом")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if deskID == "" {
		if fs.NArg() == 0 {
			return errors.New("reservation ids or --desk with --date are required")
		}
		if batch {
			if err := a.client.CancelReservations(ctx, fs.Args()); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "cancelled %d reservations\n", fs.NArg())
			return nil
		}
		return a.coordinator.CancelGroup(ctx, domain.GroupedReservation{ReservationIDs: fs.Args()})
	}

	day, err := timefmt.ParseDate(date, a.location)
	if err != nil {
		return err
	}
	groups, err := a.client.ListGroupedReservations(ctx)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if g.DeskID == deskID && domain.IsSameDay(g.Date, day) {
			return a.coordinator.CancelGroup(ctx, g)
		}
	}
	return fmt.Errorf("no reservations on desk %s for %s", deskID, date)
}

func (a *app) cancelAll(ctx context.Context) error {
	n, err := a.client.CancelAllReservations(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "cancelled %d reservations\n", n)
	return nil
}

func (a *app) parseGrid(date, mode string) (time.Time, domain.SlotMode, error) {
	day, err := timefmt.ParseDate(date, a.location)
	if err != nil {
		return time.Time{}, "", err
	}
	slotMode, err := domain.ParseSlotMode(mode)
	if err != nil {
		return time.Time{}, "", err
	}
	return day, slotMode, nil
}

func (a *app) printDesks(desks []domain.Desk) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tSLOTS")
	for _, d := range desks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Status, a.formatSlots(d.ReservedSlots))
	}
	_ = w.Flush()
}

func (a *app) formatSlots(slots []domain.TimeSlot) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, timefmt.Format(s.From, a.location)+"-"+s.To.In(a.location).Format("15:04"))
	}
	return strings.Join(parts, ", ")
}
