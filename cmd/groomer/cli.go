package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/piresc/groomer/internal/pkg/models"
	"github.com/piresc/groomer/internal/utils"
	"github.com/piresc/groomer/services/auth"
	authuc "github.com/piresc/groomer/services/auth/usecase"
	"github.com/piresc/groomer/services/groomer"
)

const helpText = `commands:
  country <CODE>                 select the dial code country (default IN)
  id <email or phone>            enter the login identifier
  otp                            send a login code to the phone identifier
  register-otp                   send a registration code to the phone identifier
  code <6 digits>                submit the code
  password <password>            log in with the identifier and password
  register <name>;<email>;<password>;<address>
                                 create an account for the verified phone
  status                         show session and verification state
  profile | assigned | history   account views
  available [lat lng [radiusKm]] list open orders
  accept <orderId> [eta]         accept an order
  order <orderId> <STATUS> [notes]
  service-otp <orderId> start|end
  start <orderId> <code>         start an order with the customer's code
  complete <orderId> <code> [notes]
  location <lat> <lng>           report where you are now
  area <lat> <lng> [radiusKm]    move the service area
  stats
  earnings today|week|month
  availability on|off
  health | logout | help | quit`

type cli struct {
	in        *bufio.Scanner
	authUC    auth.AuthUC
	flow      *authuc.OTPFlow
	groomerUC groomer.GroomerUC
	tracker   *utils.IdentifierTracker

	outMu sync.Mutex
	out   io.Writer

	// phone proven by a registration OTP, waiting for the register form
	verifiedPhone string
}

func newCLI(in io.Reader, out io.Writer, authUC auth.AuthUC, flow *authuc.OTPFlow, groomerUC groomer.GroomerUC, country models.Country) *cli {
	return &cli{
		in:        bufio.NewScanner(in),
		out:       out,
		authUC:    authUC,
		flow:      flow,
		groomerUC: groomerUC,
		tracker:   utils.NewIdentifierTracker(country),
	}
}

func (c *cli) printf(format string, args ...interface{}) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Run reads commands until EOF, quit or ctx ends
func (c *cli) Run(ctx context.Context) {
	unsubscribe := c.authUC.Subscribe(func(session models.AuthSession) {
		if session.IsAuthenticated() {
			c.printf("signed in as %s", session.Groomer.Name)
			return
		}
		c.printf("signed out")
	})
	defer unsubscribe()

	if session := c.authUC.Session(); session.IsAuthenticated() {
		c.printf("welcome back, %s", session.Groomer.Name)
	}
	c.printf("type help for commands")

	lines := make(chan string)
	go func() {
		defer close(lines)
		for c.in.Scan() {
			lines <- c.in.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if quit := c.dispatch(ctx, line); quit {
				return
			}
		}
	}
}

func (c *cli) dispatch(ctx context.Context, line string) bool {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch cmd {
	case "":
	case "help":
		c.printf(helpText)
	case "quit", "exit":
		return true
	case "country":
		c.selectCountry(rest)
	case "id":
		c.enterIdentifier(ctx, rest)
	case "otp":
		c.requestCode(ctx, models.PurposeLogin)
	case "register-otp":
		c.requestCode(ctx, models.PurposeRegistration)
	case "code":
		c.submitCode(ctx, rest)
	case "password":
		c.login(ctx, rest)
	case "register":
		c.register(ctx, rest)
	case "status":
		c.status()
	case "logout":
		c.authUC.Logout(ctx)
		c.flow.Reset()
	case "profile":
		c.profile(ctx)
	case "availability":
		c.availability(ctx, rest)
	case "available":
		c.availableOrders(ctx, args)
	case "assigned":
		c.assignedOrders(ctx)
	case "accept":
		c.acceptOrder(ctx, args)
	case "order":
		c.updateOrder(ctx, args)
	case "service-otp":
		c.serviceOTP(ctx, args)
	case "start":
		c.serviceCode(ctx, models.ServiceStart, args)
	case "complete":
		c.serviceCode(ctx, models.ServiceEnd, args)
	case "location":
		c.location(ctx, args)
	case "area":
		c.serviceArea(ctx, args)
	case "stats":
		c.statistics(ctx)
	case "earnings":
		c.earnings(ctx, rest)
	case "history":
		c.history(ctx)
	case "health":
		if c.groomerUC.Health(ctx) {
			c.printf("backend is reachable")
		} else {
			c.printf("backend is not reachable")
		}
	default:
		c.printf("unknown command %q, type help", cmd)
	}
	return false
}

func (c *cli) selectCountry(code string) {
	country, ok := utils.CountryByCode(code)
	if !ok {
		c.printf("unknown country %q", code)
		return
	}
	identifier, changed := c.tracker.SetCountry(country)
	c.printf("country: %s %s (%s)", country.Flag, country.DisplayName, country.DialCode)
	if changed && identifier.Kind == models.IdentifierPhone {
		c.flow.ChangeIdentifier(identifier)
		c.printf("phone: %s", identifier.NormalizedValue)
	}
}

func (c *cli) enterIdentifier(ctx context.Context, raw string) {
	before := c.tracker.Country()
	identifier, changed := c.tracker.Update(raw)
	if after := c.tracker.Country(); after.Code != before.Code {
		c.printf("country: %s %s (%s)", after.Flag, after.DisplayName, after.DialCode)
	}
	if !changed {
		return
	}
	if c.flow.ChangeIdentifier(identifier) {
		c.verifiedPhone = ""
	}

	switch identifier.Kind {
	case models.IdentifierEmail:
		c.printf("email: %s", identifier.NormalizedValue)
	case models.IdentifierPhone:
		c.printf("phone: %s", identifier.NormalizedValue)
	default:
		c.printf("enter an email or a phone number")
		return
	}

	exists, err := c.authUC.CheckIdentifier(ctx, identifier)
	if err != nil {
		c.printf("%s", models.UserMessage(err, "could not check the account"))
		return
	}
	switch {
	case !exists:
		c.printf("no account found, use register-otp to sign up")
	case identifier.Kind == models.IdentifierPhone:
		c.printf("use otp or password to sign in")
	default:
		c.printf("use password to sign in")
	}
}

func (c *cli) requestCode(ctx context.Context, purpose models.OTPPurpose) {
	identifier := c.tracker.Current()
	if identifier.Kind != models.IdentifierPhone {
		c.printf("enter a phone number first")
		return
	}

	if purpose == models.PurposeRegistration {
		exists, err := c.authUC.CheckAccount(ctx, identifier.NormalizedValue)
		if err != nil {
			c.printf("%s", models.UserMessage(err, "could not check the account"))
			return
		}
		if exists {
			c.printf("an account already uses this phone, sign in instead")
			return
		}
	}

	message, err := c.flow.RequestCode(ctx, identifier, purpose)
	if err != nil {
		if errors.Is(err, models.ErrResendNotAllowed) {
			c.printf("resend in %s", utils.FormatCooldown(c.flow.Snapshot().CooldownSecondsRemaining))
			return
		}
		c.printf("%s", models.UserMessage(err, "could not send the code"))
		return
	}
	c.printf("%s", message)

	c.flow.StartCountdown(ctx, func(remaining int) {
		if remaining == 0 {
			c.printf("you can request a new code now")
		}
	})
}

func (c *cli) submitCode(ctx context.Context, code string) {
	outcome, err := c.flow.SubmitCode(ctx, code)
	if err != nil {
		c.printf("%s", models.UserMessage(err, "verification failed"))
		return
	}

	switch outcome.Kind {
	case models.OutcomeFullyAuthenticated:
	case models.OutcomeAwaitingPassword:
		c.printf("%s", outcome.Message)
	case models.OutcomeAwaitingRegistration:
		c.verifiedPhone = outcome.Phone
		c.printf("%s", outcome.Message)
	}
}

func (c *cli) login(ctx context.Context, password string) {
	if _, err := c.authUC.Login(ctx, c.tracker.Current(), password); err != nil {
		c.printf("%s", models.UserMessage(err, "login failed"))
	}
}

func (c *cli) register(ctx context.Context, form string) {
	if c.verifiedPhone == "" {
		c.printf("verify your phone with register-otp first")
		return
	}
	fields := strings.Split(form, ";")
	if len(fields) != 4 {
		c.printf("usage: register <name>;<email>;<password>;<address>")
		return
	}

	_, err := c.authUC.Register(ctx, &models.RegisterData{
		Name:     fields[0],
		Email:    fields[1],
		Phone:    c.verifiedPhone,
		Password: strings.TrimSpace(fields[2]),
		Address:  fields[3],
	})
	if err != nil {
		c.printf("%s", models.UserMessage(err, "registration failed"))
		return
	}
	c.verifiedPhone = ""
}

func (c *cli) status() {
	session := c.authUC.Session()
	if session.IsAuthenticated() {
		c.printf("session: %s (#%d)", session.Groomer.Name, session.Groomer.ID)
	} else {
		c.printf("session: signed out")
	}

	snapshot := c.flow.Snapshot()
	if snapshot.Stage == models.StageIdle {
		return
	}
	c.printf("verification: %s %s for %s", snapshot.Purpose, snapshot.Stage, utils.MaskPhone(snapshot.Identifier.NormalizedValue))
	if snapshot.CooldownSecondsRemaining > 0 {
		c.printf("resend in %s", utils.FormatCooldown(snapshot.CooldownSecondsRemaining))
	}
}

func (c *cli) profile(ctx context.Context) {
	profile, err := c.groomerUC.Profile(ctx)
	if err != nil {
		c.printf("%s", models.UserMessage(err, "could not load the profile"))
		return
	}
	c.printf("%s <%s> %s", profile.Name, profile.Email, profile.Phone)
	c.printf("rating %.1f, %d orders, available: %t", profile.Rating, profile.TotalOrders, profile.IsAvailableForOrders)
}

func (c *cli) availability(ctx context.Context, value string) {
	var available bool
	switch value {
	case "on":
		available = true
	case "off":
	default:
		c.printf("usage: availability on|off")
		return
	}
	if err := c.groomerUC.SetAvailability(ctx, available); err != nil {
		c.printf("%s", models.UserMessage(err, "could not update availability"))
	}
}

func (c *cli) availableOrders(ctx context.Context, args []string) {
	var query models.OrderQuery
	values := make([]*float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			c.printf("usage: available [lat lng [radiusKm]]")
			return
		}
		values[i] = &v
	}
	if len(values) >= 2 {
		query.Latitude, query.Longitude = values[0], values[1]
	}
	if len(values) >= 3 {
		query.RadiusKm = values[2]
	}

	orders, err := c.groomerUC.AvailableOrders(ctx, query)
	if err != nil {
		c.printf("%s", models.UserMessage(err, "could not load orders"))
		return
	}
	c.printOrders(orders)
}

func (c *cli) assignedOrders(ctx context.Context) {
	orders, err := c.groomerUC.AssignedOrders(ctx)
	if err != nil {
		c.printf("%s", models.UserMessage(err, "could not load orders"))
		return
	}
	c.printOrders(orders)
}

func (c *cli) printOrders(orders []models.Order) {
	if len(orders) == 0 {
		c.printf("no orders")
		return
	}
	for _, o := range orders {
		line := fmt.Sprintf("#%d %s for %s (%s) %s %.2f", o.ID, o.ServiceName, o.PetName, o.CustomerName, o.Status, o.ServicePrice)
		if o.DistanceFromGroomer != nil {
			line += fmt.Sprintf(" %.1fkm", *o.DistanceFromGroomer)
		}
		c.printf("%s", line)
	}
}

func (c *cli) acceptOrder(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.printf("usage: accept <orderId> [eta]")
		return
	}
	orderID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		c.printf("usage: accept <orderId> [eta]")
		return
	}
	if err := c.groomerUC.AcceptOrder(ctx, orderID, strings.Join(args[1:], " ")); err != nil {
		c.printf("%s", models.UserMessage(err, "could not accept the order"))
		return
	}
	c.printf("order #%d accepted", orderID)
}

func (c *cli) updateOrder(ctx context.Context, args []string) {
	if len(args) < 2 {
		c.printf("usage: order <orderId> <STATUS> [notes]")
		return
	}
	orderID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		c.printf("usage: order <orderId> <STATUS> [notes]")
		return
	}
	status := models.OrderStatus(strings.ToUpper(args[1]))
	if err := c.groomerUC.UpdateOrderStatus(ctx, orderID, status, strings.Join(args[2:], " ")); err != nil {
		c.printf("%s", models.UserMessage(err, "could not update the order"))
		return
	}
	c.printf("order #%d is now %s", orderID, status)
}

func (c *cli) earnings(ctx context.Context, period string) {
	earnings, err := c.groomerUC.Earnings(ctx, models.EarningsPeriod(period))
	if err != nil {
		c.printf("%s", models.UserMessage(err, "could not load earnings"))
		return
	}
	c.printf("total %.2f from %d orders (avg %.2f)", earnings.TotalEarnings, earnings.CompletedOrders, earnings.AverageOrderValue)
}

func (c *cli) history(ctx context.Context) {
	history, err := c.groomerUC.EarningsHistory(ctx)
	if err != nil {
		c.printf("%s", models.UserMessage(err, "could not load earnings history"))
		return
	}
	if len(history) == 0 {
		c.printf("no completed orders")
		return
	}
	for _, h := range history {
		c.printf("#%d %s %s %.2f %s", h.OrderID, h.CustomerName, h.ServiceName, h.Amount, h.CompletedAt)
	}
}

func (c *cli) serviceOTP(ctx context.Context, args []string) {
	if len(args) != 2 {
		c.printf("usage: service-otp <orderId> start|end")
		return
	}
	orderID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		c.printf("usage: service-otp <orderId> start|end")
		return
	}
	msg, err := c.groomerUC.RequestServiceOTP(ctx, orderID, models.ServiceStage(strings.ToLower(args[1])))
	if err != nil {
		c.printf("%s", models.UserMessage(err, "could not request the code"))
		return
	}
	c.printf("%s", msg)
}

func (c *cli) serviceCode(ctx context.Context, stage models.ServiceStage, args []string) {
	usage := "usage: start <orderId> <code>"
	if stage == models.ServiceEnd {
		usage = "usage: complete <orderId> <code> [notes]"
	}
	if len(args) < 2 {
		c.printf("%s", usage)
		return
	}
	orderID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		c.printf("%s", usage)
		return
	}
	if err := c.groomerUC.VerifyServiceOTP(ctx, orderID, stage, args[1], strings.Join(args[2:], " ")); err != nil {
		c.printf("%s", models.UserMessage(err, "the code was not accepted"))
		return
	}
	if stage == models.ServiceStart {
		c.printf("order #%d started", orderID)
	} else {
		c.printf("order #%d completed", orderID)
	}
}

func parseCoordinates(args []string) (float64, float64, bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

func (c *cli) location(ctx context.Context, args []string) {
	lat, lng, ok := parseCoordinates(args)
	if !ok || len(args) != 2 {
		c.printf("usage: location <lat> <lng>")
		return
	}
	if err := c.groomerUC.UpdateCurrentLocation(ctx, lat, lng); err != nil {
		c.printf("%s", models.UserMessage(err, "could not update the location"))
		return
	}
	c.printf("location updated")
}

func (c *cli) serviceArea(ctx context.Context, args []string) {
	lat, lng, ok := parseCoordinates(args)
	if !ok || len(args) > 3 {
		c.printf("usage: area <lat> <lng> [radiusKm]")
		return
	}
	update := models.LocationUpdate{Latitude: lat, Longitude: lng}
	if len(args) == 3 {
		radius, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			c.printf("usage: area <lat> <lng> [radiusKm]")
			return
		}
		update.ServiceRadiusKm = &radius
	}
	if err := c.groomerUC.UpdateServiceArea(ctx, update); err != nil {
		c.printf("%s", models.UserMessage(err, "could not update the service area"))
		return
	}
	c.printf("service area updated")
}

func (c *cli) statistics(ctx context.Context) {
	stats, err := c.groomerUC.Statistics(ctx)
	if err != nil {
		c.printf("%s", models.UserMessage(err, "could not load statistics"))
		return
	}
	if len(stats) == 0 {
		c.printf("no statistics yet")
		return
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.printf("%s: %v", k, stats[k])
	}
}
