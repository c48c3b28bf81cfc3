// Command formguard validates Indian government form records and fills
// forms interactively.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/attachment"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/batch"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/config"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/forms"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/logger"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/otp"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/pincode"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/prompt"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/session"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/submission"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/validator"
)

const usage = `formguard - form portal validation

Usage:
  formguard forms                          list forms and their fields
  formguard checksum [-complete] <number>...
                                           check Aadhaar checksums, or append
                                           the check digit to 11-digit prefixes
  formguard validate [-form id] [-workers n] <file|->...
                                           validate YAML/JSON record files
  formguard pincode <code>...              resolve PIN codes
  formguard fill <form>                    fill and submit a form interactively

Configuration is read from the environment and an optional .env file.
`

const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type app struct {
	cfg    config.App
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" || args[0] == "--help" {
		fmt.Fprint(stderr, usage)
		return exitOK
	}

	cfg, err := config.LoadApp()
	if err != nil {
		fmt.Fprintf(stderr, "formguard: %v\n", err)
		return exitError
	}
	a := &app{
		cfg: cfg,
		log: logger.New(
			logger.WithEnvironment(string(cfg.Env), "formguard"),
			logger.WithLevel(cfg.LogLevel),
			logger.WithFormat(logger.Format(cfg.LogFormat)),
			logger.WithOutput(stderr),
		),
		stdout: stdout,
		stderr: stderr,
	}

	cmd, rest := args[0], args[1:]
	var handler func(context.Context, []string) (int, error)
	switch cmd {
	case "forms":
		handler = a.listForms
	case "checksum":
		handler = a.checksum
	case "validate":
		handler = a.validate
	case "pincode":
		handler = a.pincode
	case "fill":
		handler = a.fill
	default:
		fmt.Fprintf(stderr, "formguard: unknown command %q\n\n%s", cmd, usage)
		return exitError
	}

	code, err := handler(ctx, rest)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			a.log.ErrorContext(ctx, "command failed", slog.String("command", cmd), logger.Error(err))
			fmt.Fprintf(stderr, "formguard %s: %v\n", cmd, err)
		}
		return exitError
	}
	return code
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

type fieldInfo struct {
	Name     string   `yaml:"name"`
	Label    string   `yaml:"label"`
	Kind     string   `yaml:"kind"`
	Optional bool     `yaml:"optional,omitempty"`
	Choices  []string `yaml:"choices,omitempty"`
}

type formInfo struct {
	ID           string      `yaml:"id"`
	Title        string      `yaml:"title"`
	Aliases      []string    `yaml:"aliases,omitempty"`
	Verification bool        `yaml:"verification,omitempty"`
	Attachments  bool        `yaml:"attachments,omitempty"`
	Fields       []fieldInfo `yaml:"fields"`
}

func (a *app) listForms(_ context.Context, args []string) (int, error) {
	fs := a.flags("forms")
	brief := fs.Bool("brief", false, "print form IDs and titles only")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}

	if *brief {
		for _, f := range forms.All() {
			fmt.Fprintf(a.stdout, "%-10s %s\n", f.ID, f.Title)
		}
		return exitOK, nil
	}

	var out []formInfo
	for _, f := range forms.All() {
		info := formInfo{
			ID:           f.ID,
			Title:        f.Title,
			Aliases:      f.Aliases,
			Verification: f.RequiresVerification,
			Attachments:  f.RequiresAttachments,
		}
		for _, field := range f.Fields {
			info.Fields = append(info.Fields, fieldInfo{
				Name:     field.Name,
				Label:    field.Label,
				Kind:     field.Kind.String(),
				Optional: field.Optional,
				Choices:  field.Choices,
			})
		}
		out = append(out, info)
	}
	return exitOK, encodeYAML(a.stdout, out)
}

func (a *app) checksum(_ context.Context, args []string) (int, error) {
	fs := a.flags("checksum")
	complete := fs.Bool("complete", false, "treat arguments as 11-digit prefixes and print the full number")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if fs.NArg() == 0 {
		return exitError, errors.New("no numbers given")
	}

	code := exitOK
	for _, n := range fs.Args() {
		if *complete {
			d, err := validator.VerhoeffCheckDigit(n)
			if err != nil {
				fmt.Fprintf(a.stdout, "%s\terror: %v\n", n, err)
				code = exitInvalid
				continue
			}
			fmt.Fprintf(a.stdout, "%s%c\n", n, d)
			continue
		}

		status := "valid"
		if !forms.ValidateChecksum(n) {
			status, code = "invalid", exitInvalid
		}
		fmt.Fprintf(a.stdout, "%s\t%s\n", n, status)
	}
	return code, nil
}

func (a *app) validate(ctx context.Context, args []string) (int, error) {
	fs := a.flags("validate")
	form := fs.String("form", "", "validate every record against this form")
	workers := fs.Int("workers", 4, "files read in parallel")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if fs.NArg() == 0 {
		return exitError, errors.New("no record files given")
	}
	if *form != "" {
		if _, err := forms.Lookup(*form); err != nil {
			return exitError, err
		}
	}

	v := batch.New(
		batch.WithForm(*form),
		batch.WithWorkers(*workers),
		batch.WithLogger(a.log),
	)
	report, err := v.ValidateFiles(ctx, fs.Args())
	if err != nil {
		return exitError, err
	}
	if err := report.Write(a.stdout); err != nil {
		return exitError, err
	}
	if !report.OK() {
		return exitInvalid, nil
	}
	return exitOK, nil
}

func (a *app) resolver() pincode.Resolver {
	return pincode.Cached(pincode.Delayed(pincode.Static(), a.cfg.PincodeDelay), a.cfg.PincodeCacheSize)
}

func (a *app) pincode(ctx context.Context, args []string) (int, error) {
	fs := a.flags("pincode")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if fs.NArg() == 0 {
		return exitError, errors.New("no PIN codes given")
	}

	r := a.resolver()
	code := exitOK
	out := make(map[string]any, fs.NArg())
	for _, c := range fs.Args() {
		loc, err := r.Resolve(ctx, strings.TrimSpace(c))
		switch {
		case err == nil:
			out[c] = loc
		case errors.Is(err, pincode.ErrNotFound), errors.Is(err, pincode.ErrInvalidCode):
			out[c] = err.Error()
			code = exitInvalid
		default:
			return exitError, err
		}
	}
	return code, encodeYAML(a.stdout, out)
}

func (a *app) fill(ctx context.Context, args []string) (int, error) {
	fs := a.flags("fill")
	attempts := fs.Int("otp-attempts", 3, "wrong OTP codes allowed before giving up")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if fs.NArg() != 1 {
		return exitError, errors.New("exactly one form ID expected")
	}
	form, err := forms.Lookup(fs.Arg(0))
	if err != nil {
		return exitError, err
	}

	s := session.New(form,
		session.WithTransport(submission.NewSimulated(a.cfg.SubmitDelay)),
		session.WithOTP(a.otpService()),
		session.WithResolver(a.resolver()),
		session.WithAttachmentPolicy(attachment.Policy{
			MaxBytes: a.cfg.AttachmentMaxBytes,
			Allowed:  attachment.AllowedTypes,
		}),
		session.WithLogger(a.log),
	)
	ctx = logger.WithSessionID(ctx, s.ID())

	filler := prompt.NewFiller(prompt.NewSurvey(), prompt.WithLogger(a.log), prompt.WithOTPAttempts(*attempts))
	if _, err := filler.Fill(ctx, s); err != nil {
		switch {
		case errors.Is(err, prompt.ErrAborted), errors.Is(err, prompt.ErrCancelled):
			fmt.Fprintln(a.stderr, "cancelled")
			return exitInvalid, nil
		case errors.Is(err, otp.ErrCooldown), errors.Is(err, prompt.ErrTooManyAttempts):
			return exitInvalid, err
		}
		if _, ok := forms.AsValidationError(err); ok {
			return exitInvalid, nil
		}
		return exitError, err
	}
	return exitOK, nil
}

func (a *app) otpService() otp.Service {
	opts := []otp.Option{
		otp.WithDelay(a.cfg.OTPDelay),
		otp.WithCooldown(a.cfg.OTPCooldown),
	}
	if !a.cfg.OTPGenerateCodes {
		opts = append(opts, otp.WithDemoCode(a.cfg.OTPDemoCode))
	}
	svc := otp.NewSimulated(opts...)
	return &smsConsole{Simulated: svc, out: a.stderr}
}

// smsConsole prints each sent code, standing in for the SMS gateway.
type smsConsole struct {
	*otp.Simulated
	out io.Writer
}

func (c *smsConsole) Send(ctx context.Context, mobile string) error {
	if err := c.Simulated.Send(ctx, mobile); err != nil {
		return err
	}
	if code, ok := c.LastCode(mobile); ok {
		fmt.Fprintf(c.out, "[sms to %s] your code is %s\n", mobile, code)
	}
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
