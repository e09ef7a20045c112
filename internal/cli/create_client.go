package cli

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const defaultScopes = "pizzas:read pizzas:write"

func newCreateClientCmd(opts *globalOptions) *cobra.Command {
	var (
		role     string
		clientID string
		secret   string
		email    string
		name     string
		scopes   string
	)

	cmd := &cobra.Command{
		Use:   "create-client",
		Short: "Register an OAuth2 client for the API",
		Long:  "Create the owning user for the role if missing, then register a client_credentials client with a bcrypt hashed secret. The plain secret is printed once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !models.ValidRole(role) {
				return fmt.Errorf("unknown role %q (valid: %s, %s)", role, models.RoleAdmin, models.RoleUser)
			}
			if clientID == "" {
				clientID = fmt.Sprintf("%s-client-%s", role, uuid.NewString()[:8])
			}
			if secret == "" {
				secret = uuid.NewString()
			}
			if email == "" {
				email = role + "@pizzeria.local"
			}

			db, err := opts.openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			ctx := cmd.Context()
			clientService := services.NewClientService(db)
			if _, err := clientService.GetClientByID(ctx, clientID); err == nil {
				return fmt.Errorf("client %q already exists", clientID)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			user, created, err := services.NewUserService(db).EnsureUser(ctx, email, name, role)
			if err != nil {
				return fmt.Errorf("ensuring user %s: %w", email, err)
			}
			if !created && user.Role != role {
				return fmt.Errorf("user %s already exists with role %q", email, user.Role)
			}

			client := &models.OAuthClient{
				ID:         clientID,
				Name:       name,
				Domain:     "http://localhost",
				UserID:     user.ID,
				Scopes:     scopes,
				GrantTypes: "client_credentials",
			}
			if err := clientService.RegisterClient(ctx, client, secret); err != nil {
				return fmt.Errorf("registering client: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Client ID: %s\n", clientID)
			fmt.Fprintf(out, "Client Secret: %s\n", secret)
			fmt.Fprintf(out, "Role: %s (user %s)\n", role, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", models.RoleAdmin, "Role of the owning user (admin or user)")
	cmd.Flags().StringVar(&clientID, "id", "", "Client ID (generated when empty)")
	cmd.Flags().StringVar(&secret, "secret", "", "Client secret (generated when empty)")
	cmd.Flags().StringVar(&email, "email", "", "Email of the owning user (defaults to <role>@pizzeria.local)")
	cmd.Flags().StringVar(&name, "name", "pizzeriactl client", "Display name of the client")
	cmd.Flags().StringVar(&scopes, "scopes", defaultScopes, "Space separated scopes granted to the client")

	return cmd
}
