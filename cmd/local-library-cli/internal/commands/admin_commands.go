package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/mikescor/local-library/internal/app"
	"github.com/mikescor/local-library/internal/domain/accounts"
	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/infrastructure/persistence"
	"github.com/mikescor/local-library/internal/infrastructure/persistence/models"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// AdminCommandHandler encapsulates logic for the administrative
// database operations run via CLI.
type AdminCommandHandler struct {
	logger logger.Logger
}

// NewAdminCommandHandler initializes and returns an AdminCommandHandler
// instance with a configured logger.
func NewAdminCommandHandler() (*AdminCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AdminCommandHandler{
		logger: loggerInstance,
	}, nil
}

// MigrateCmd creates or updates the database schema.
func (commandHandler *AdminCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
	db, err := openDatabase(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		commandHandler.logger.Error("failed to migrate schema ", err)
		return
	}
	commandHandler.logger.Info("Database migrations completed successfully")
}

// CreateUserCmd registers a new user account. With --librarian the
// account receives the full librarian permission set.
func (commandHandler *AdminCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		commandHandler.logger.Error("invalid username flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}
	librarian, err := cmd.Flags().GetBool("librarian")
	if err != nil {
		commandHandler.logger.Error("invalid librarian flag ", err)
		return
	}

	db, err := openDatabase(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error("failed to create user repository ", err)
		return
	}
	accountService, err := app.NewAccountService(userRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error("failed to create account service ", err)
		return
	}

	var permissions []string
	if librarian {
		permissions = accounts.LibrarianPermissions
	}

	user, err := accountService.Register(cmd.Context(), username, password, permissions)
	if err != nil {
		commandHandler.logger.Error("failed to register user ", err)
		return
	}
	commandHandler.logger.Info("Created user ", user.Username, " with id ", user.ID)
}

// SeedCmd loads a small sample catalog for local development.
func (commandHandler *AdminCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) {
	db, err := openDatabase(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		commandHandler.logger.Error("failed to migrate schema ", err)
		return
	}

	if err := commandHandler.seedCatalog(cmd, db); err != nil {
		commandHandler.logger.Error("failed to seed catalog ", err)
		return
	}
	commandHandler.logger.Info("Sample catalog seeded successfully")
}

func (commandHandler *AdminCommandHandler) seedCatalog(cmd *cobra.Command, db *gorm.DB) error {
	ctx := cmd.Context()

	authorRepo, err := persistence.NewGormAuthorRepository(db, commandHandler.logger)
	if err != nil {
		return err
	}
	genreRepo, err := persistence.NewGormGenreRepository(db, commandHandler.logger)
	if err != nil {
		return err
	}
	bookRepo, err := persistence.NewGormBookRepository(db, commandHandler.logger)
	if err != nil {
		return err
	}
	instanceRepo, err := persistence.NewGormBookInstanceRepository(db, commandHandler.logger)
	if err != nil {
		return err
	}

	authorService, err := app.NewAuthorService(authorRepo, commandHandler.logger)
	if err != nil {
		return err
	}
	bookService, err := app.NewBookService(bookRepo, genreRepo, commandHandler.logger)
	if err != nil {
		return err
	}

	fantasy := &catalog.Genre{ID: uuid.New().String(), Name: "Fantasy"}
	poetry := &catalog.Genre{ID: uuid.New().String(), Name: "Poetry"}
	for _, genre := range []*catalog.Genre{fantasy, poetry} {
		if err := genreRepo.Create(ctx, genre); err != nil {
			return fmt.Errorf("failed to create genre %s: %w", genre.Name, err)
		}
	}

	birth := time.Date(1892, time.January, 3, 0, 0, 0, 0, time.UTC)
	death := time.Date(1973, time.September, 2, 0, 0, 0, 0, time.UTC)
	tolkien, err := authorService.Create(ctx, &catalog.Author{
		FirstName:   "John Ronald Reuel",
		LastName:    "Tolkien",
		DateOfBirth: &birth,
		DateOfDeath: &death,
	})
	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}

	book, err := bookService.Create(ctx, &catalog.Book{
		Title:    "The Hobbit",
		Summary:  "Bilbo Baggins is swept into a quest to reclaim the dwarf kingdom of Erebor.",
		ISBN:     "9780261103344",
		Language: "English",
		AuthorID: tolkien.ID,
	}, []string{fantasy.ID})
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	copies := []*catalog.BookInstance{
		{ID: uuid.New().String(), BookID: book.ID, Imprint: "HarperCollins, 1995", Status: catalog.StatusAvailable},
		{ID: uuid.New().String(), BookID: book.ID, Imprint: "HarperCollins, 1995", Status: catalog.StatusMaintenance},
	}
	for _, copy := range copies {
		if err := instanceRepo.Create(ctx, copy); err != nil {
			return fmt.Errorf("failed to create book copy: %w", err)
		}
	}

	return nil
}

// InitAdminCommands registers the administrative commands with the root
// command.
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler, err := NewAdminCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin command handler: %w", err)
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run:   handler.MigrateCmd,
	}
	migrateCmd.Flags().String("config", "", "Path to the YAML configuration file")
	rootCmd.AddCommand(migrateCmd)

	createUserCmd := &cobra.Command{
		Use:   "create-user",
		Short: "Register a new user account",
		Run:   handler.CreateUserCmd,
	}
	createUserCmd.Flags().String("config", "", "Path to the YAML configuration file")
	createUserCmd.Flags().String("username", "", "Username of the new account")
	createUserCmd.Flags().String("password", "", "Password of the new account")
	createUserCmd.Flags().Bool("librarian", false, "Grant the librarian permission set")
	rootCmd.AddCommand(createUserCmd)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a small sample catalog",
		Run:   handler.SeedCmd,
	}
	seedCmd.Flags().String("config", "", "Path to the YAML configuration file")
	rootCmd.AddCommand(seedCmd)

	return nil
}
