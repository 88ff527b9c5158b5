package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mpt/internal/bootstrap"
	deploydto "mpt/internal/modules/deploy/dto"
	rosterdto "mpt/internal/modules/roster/dto"
	submissiondto "mpt/internal/modules/submission/dto"
	viewerdto "mpt/internal/modules/viewer/dto"
	"mpt/internal/platform/config"
	"mpt/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var coursePath string
	var debug bool

	root := &cobra.Command{
		Use:           "mpt",
		Short:         "MyPyTutor course administration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetDebug()
			}
		},
	}
	root.PersistentFlags().StringVar(&coursePath, "course", ".", "course directory path")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newTUICmd(&coursePath))
	root.AddCommand(newCatalogCmd(&coursePath))
	root.AddCommand(newDeployCmd(&coursePath))
	root.AddCommand(newSubmissionCmd(&coursePath))
	root.AddCommand(newRosterCmd(&coursePath))
	root.AddCommand(newViewerCmd(&coursePath))
	return root
}

// loadApp wires the full application for one command invocation. The returned
// closeFn flushes the log file and releases store locks.
func loadApp(coursePath string) (*bootstrap.App, func(), error) {
	cfg, err := config.New(coursePath)
	if err != nil {
		return nil, nil, err
	}
	logger, closeLog, err := logging.New(cfg.LogPath)
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	closeFn := func() {
		_ = app.Close()
		closeLog()
	}
	return app, closeFn, nil
}

func newTUICmd(coursePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run mpt terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			return bootstrap.RunTUI(app)
		},
	}
}

func newCatalogCmd(coursePath *string) *cobra.Command {
	catalog := &cobra.Command{Use: "catalog", Short: "Tutorial catalog commands"}

	catalog.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the full catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			out, err := app.CatalogCLI.Show(context.Background())
			if err != nil {
				return err
			}
			if out.SourceURL != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "url: %s\n", out.SourceURL)
			}
			for _, s := range out.Sections {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d exercises\n", s.Ordinal, s.Date, s.Title, s.ExerciseCount)
			}
			return nil
		},
	})

	catalog.AddCommand(&cobra.Command{
		Use:   "sections",
		Short: "List catalog sections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			sections, err := app.CatalogCLI.ListSections(context.Background())
			if err != nil {
				return err
			}
			if len(sections) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sections")
				return nil
			}
			for _, s := range sections {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d exercises\n", s.Ordinal, s.Date, s.Title, s.ExerciseCount)
			}
			return nil
		},
	})

	var ordinal int
	section := &cobra.Command{
		Use:   "section --ordinal <n>",
		Short: "Show one section's exercises",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			detail, err := app.CatalogCLI.GetSection(context.Background(), ordinal)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", detail.Title, detail.Date)
			for _, ex := range detail.Exercises {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\tfile=%s", ex.Title, ex.File)
				if len(ex.Assets) > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\tassets=%s", strings.Join(ex.Assets, ","))
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	section.Flags().IntVar(&ordinal, "ordinal", 1, "1-based section number")
	catalog.AddCommand(section)

	var file string
	find := &cobra.Command{
		Use:   "find --file <name>",
		Short: "Find the exercise that uses a tutorial file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(file) == "" {
				return fmt.Errorf("--file is required")
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			out, err := app.CatalogCLI.FindExercise(context.Background(), file)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tsection=%q date=%s file=%s\n", out.Title, out.SectionTitle, out.SectionDate, out.File)
			return nil
		},
	}
	find.Flags().StringVar(&file, "file", "", "tutorial file name")
	catalog.AddCommand(find)

	catalog.AddCommand(&cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite catalog index from tutorials.txt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			if err := app.CatalogCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	})

	return catalog
}

func newDeployCmd(coursePath *string) *cobra.Command {
	deploy := &cobra.Command{Use: "deploy", Short: "Server deployment commands"}

	var host, basePath, pattern string
	var delaySec int

	addTargetFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&host, "host", "", "override deployment host")
		cmd.Flags().StringVar(&basePath, "base", "", "override remote base path")
		cmd.Flags().StringVar(&pattern, "pattern", "", "override push file pattern")
		cmd.Flags().IntVar(&delaySec, "delay", 0, "override seconds to wait between provision and push")
	}
	buildInput := func(cmd *cobra.Command) deploydto.RunInput {
		input := deploydto.RunInput{Host: host, BasePath: basePath, Pattern: pattern}
		if cmd.Flags().Changed("delay") {
			d := delaySec
			input.DelaySec = &d
		}
		return input
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Provision remote data directories, wait, then push tutorial files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			out, err := app.DeployCLI.Run(context.Background(), buildInput(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "run=%s host=%s\nscript: %s\npushed %s to %s\n", out.RunID, out.Host, out.Script, out.Pattern, out.Dest)
			return nil
		},
	}
	addTargetFlags(run)
	deploy.AddCommand(run)

	provision := &cobra.Command{
		Use:   "provision",
		Short: "Create remote data directories only",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			out, err := app.DeployCLI.Provision(context.Background(), buildInput(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "run=%s host=%s\nscript: %s\n", out.RunID, out.Host, out.Script)
			return nil
		},
	}
	addTargetFlags(provision)
	deploy.AddCommand(provision)

	push := &cobra.Command{
		Use:   "push",
		Short: "Push tutorial files to the server without provisioning",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			out, err := app.DeployCLI.Push(context.Background(), buildInput(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "run=%s pushed %s to %s\n", out.RunID, out.Pattern, out.Dest)
			return nil
		},
	}
	addTargetFlags(push)
	deploy.AddCommand(push)

	return deploy
}

func newSubmissionCmd(coursePath *string) *cobra.Command {
	submission := &cobra.Command{Use: "submission", Short: "Submission store commands"}

	var user, hash, codeFile string
	submit := &cobra.Command{
		Use:   "submit --user <id> --hash <tutorial-hash> --code <file>",
		Short: "Record a submission",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(user) == "" || strings.TrimSpace(hash) == "" || strings.TrimSpace(codeFile) == "" {
				return fmt.Errorf("--user, --hash, and --code are required")
			}
			code, err := os.ReadFile(codeFile)
			if err != nil {
				return fmt.Errorf("read code file: %w", err)
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			out, err := app.SubmissionCLI.Submit(context.Background(), submissiondto.SubmitInput{
				User: user,
				Hash: hash,
				Code: string(code),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "submitted %s for %s at %s\n", out.Hash, out.User, out.Date.Format("2006-01-02T15:04:05Z07:00"))
			return nil
		},
	}
	submit.Flags().StringVar(&user, "user", "", "student id")
	submit.Flags().StringVar(&hash, "hash", "", "tutorial hash")
	submit.Flags().StringVar(&codeFile, "code", "", "path to the submitted code")
	submission.AddCommand(submit)

	var listUser string
	list := &cobra.Command{
		Use:   "list --user <id>",
		Short: "List a student's submission log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(listUser) == "" {
				return fmt.Errorf("--user is required")
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			subs, err := app.SubmissionCLI.List(context.Background(), listUser)
			if err != nil {
				return err
			}
			if len(subs) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no submissions")
				return nil
			}
			for _, s := range subs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tallow_late=%t\n", s.Hash, s.Date.Format("2006-01-02T15:04:05Z07:00"), s.AllowLate)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listUser, "user", "", "student id")
	submission.AddCommand(list)

	var statusUser string
	status := &cobra.Command{
		Use:   "status --user <id>",
		Short: "Report a student's standing on every tutorial",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(statusUser) == "" {
				return fmt.Errorf("--user is required")
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			report, err := app.SubmissionCLI.Status(context.Background(), statusUser)
			if err != nil {
				return err
			}
			for _, entry := range report {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-8s%s/%s\tdue=%s\n", entry.Status, entry.ProblemSet, entry.Tutorial, entry.Due.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	status.Flags().StringVar(&statusUser, "user", "", "student id")
	submission.AddCommand(status)

	var lateUser, lateHash string
	allowLate := &cobra.Command{
		Use:   "allow-late --user <id> --hash <tutorial-hash>",
		Short: "Grant a late submission for one tutorial",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(lateUser) == "" || strings.TrimSpace(lateHash) == "" {
				return fmt.Errorf("--user and --hash are required")
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			if err := app.SubmissionCLI.AllowLate(context.Background(), lateUser, lateHash); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "late submission allowed for %s on %s\n", lateUser, lateHash)
			return nil
		},
	}
	allowLate.Flags().StringVar(&lateUser, "user", "", "student id")
	allowLate.Flags().StringVar(&lateHash, "hash", "", "tutorial hash")
	submission.AddCommand(allowLate)

	var codeUser, codeHash string
	code := &cobra.Command{
		Use:   "code --user <id> --hash <tutorial-hash>",
		Short: "Print the code a student submitted for a tutorial",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(codeUser) == "" || strings.TrimSpace(codeHash) == "" {
				return fmt.Errorf("--user and --hash are required")
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			payload, err := app.SubmissionCLI.SubmittedCode(context.Background(), codeUser, codeHash)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), payload)
			return nil
		},
	}
	code.Flags().StringVar(&codeUser, "user", "", "student id")
	code.Flags().StringVar(&codeHash, "hash", "", "tutorial hash")
	submission.AddCommand(code)

	var ansUser, ansPackage, ansProblemSet, ansTutorial, ansFile string
	answer := &cobra.Command{Use: "answer", Short: "Server-side answer mirror"}
	addAnswerFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&ansUser, "user", "", "student id")
		cmd.Flags().StringVar(&ansPackage, "package", "", "tutorial package")
		cmd.Flags().StringVar(&ansProblemSet, "problem-set", "", "problem set")
		cmd.Flags().StringVar(&ansTutorial, "tutorial", "", "tutorial file")
	}
	answerInput := func() (submissiondto.AnswerInput, error) {
		for _, part := range []string{ansUser, ansPackage, ansProblemSet, ansTutorial} {
			if strings.TrimSpace(part) == "" {
				return submissiondto.AnswerInput{}, fmt.Errorf("--user, --package, --problem-set, and --tutorial are required")
			}
		}
		return submissiondto.AnswerInput{
			User:       ansUser,
			Package:    ansPackage,
			ProblemSet: ansProblemSet,
			Tutorial:   ansTutorial,
		}, nil
	}

	read := &cobra.Command{
		Use:   "read",
		Short: "Print a stored answer with its hash and modification time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := answerInput()
			if err != nil {
				return err
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			out, err := app.SubmissionCLI.ReadAnswer(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "hash=%s modified=%s\n", out.Hash, out.ModTime.Format("2006-01-02T15:04:05Z07:00"))
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Code)
			return nil
		},
	}
	addAnswerFlags(read)
	answer.AddCommand(read)

	write := &cobra.Command{
		Use:   "write --file <path>",
		Short: "Store an answer from a local file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := answerInput()
			if err != nil {
				return err
			}
			if strings.TrimSpace(ansFile) == "" {
				return fmt.Errorf("--file is required")
			}
			payload, err := os.ReadFile(ansFile)
			if err != nil {
				return fmt.Errorf("read answer file: %w", err)
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			if err := app.SubmissionCLI.WriteAnswer(context.Background(), input, string(payload)); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "answer stored")
			return nil
		},
	}
	addAnswerFlags(write)
	write.Flags().StringVar(&ansFile, "file", "", "path to the answer code")
	answer.AddCommand(write)
	submission.AddCommand(answer)

	return submission
}

func newRosterCmd(coursePath *string) *cobra.Command {
	roster := &cobra.Command{Use: "roster", Short: "Student roster commands"}

	var query, enrolFilter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List students, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			users, err := app.RosterCLI.List(context.Background(), rosterdto.ListInput{Query: query, EnrolFilter: enrolFilter})
			if err != nil {
				return err
			}
			if len(users) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no students")
				return nil
			}
			for _, u := range users {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Enrolled)
			}
			return nil
		},
	}
	list.Flags().StringVar(&query, "query", "", "substring to match against id, name, or email")
	list.Flags().StringVar(&enrolFilter, "enrolled", "", "filter by enrolment state: enrolled|not_enrolled")
	roster.AddCommand(list)

	var showID string
	show := &cobra.Command{
		Use:   "show --id <student-id>",
		Short: "Show one student",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			u, err := app.RosterCLI.Get(context.Background(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nname: %s\nemail: %s\nenrolled: %s\n", u.ID, u.Name, u.Email, u.Enrolled)
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "student id")
	roster.AddCommand(show)

	var addID, addName, addEmail string
	var notEnrolled bool
	add := &cobra.Command{
		Use:   "add --id <student-id> --name <name> --email <email>",
		Short: "Add a student if their id is not already on the roster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(addID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			enrolled := "enrolled"
			if notEnrolled {
				enrolled = "not_enrolled"
			}
			added, err := app.RosterCLI.Add(context.Background(), rosterdto.AddUserInput{
				ID:       addID,
				Name:     addName,
				Email:    addEmail,
				Enrolled: enrolled,
			})
			if err != nil {
				return err
			}
			if !added {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is already on the roster\n", addID)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", addID)
			return nil
		},
	}
	add.Flags().StringVar(&addID, "id", "", "student id")
	add.Flags().StringVar(&addName, "name", "", "student name")
	add.Flags().StringVar(&addEmail, "email", "", "student email")
	add.Flags().BoolVar(&notEnrolled, "not-enrolled", false, "record the student as not enrolled")
	roster.AddCommand(add)

	return roster
}

func newViewerCmd(coursePath *string) *cobra.Command {
	viewer := &cobra.Command{Use: "viewer", Short: "Viewer plugin commands"}

	viewer.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List viewer manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			viewers, err := app.ViewerCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(viewers) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no viewers configured")
				return nil
			}
			for _, v := range viewers {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t formats=%s binary=%s\n", v.Name, v.Version, v.Enabled, strings.Join(v.Formats, ","), v.Binary)
			}
			return nil
		},
	})

	viewer.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate viewer checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			results, err := app.ViewerCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no viewers configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var viewerName, renderFile string
	var width int
	render := &cobra.Command{
		Use:   "render --viewer <name> --file <tutorial-file>",
		Short: "Render a tutorial file through a viewer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(viewerName) == "" || strings.TrimSpace(renderFile) == "" {
				return fmt.Errorf("--viewer and --file are required")
			}
			app, closeFn, err := loadApp(*coursePath)
			if err != nil {
				return err
			}
			defer closeFn()
			out, err := app.ViewerCLI.Render(context.Background(), viewerdto.RenderInput{
				Viewer: viewerName,
				File:   renderFile,
				Width:  width,
			})
			if err != nil {
				return err
			}
			for _, warning := range out.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Rendered)
			return nil
		},
	}
	render.Flags().StringVar(&viewerName, "viewer", "", "viewer name")
	render.Flags().StringVar(&renderFile, "file", "", "tutorial file name")
	render.Flags().IntVar(&width, "width", 80, "render width in columns")
	viewer.AddCommand(render)

	return viewer
}
