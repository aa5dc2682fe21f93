package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleClient troca o authorization code do front por tokens e busca o
// perfil básico do professor.
type GoogleClient interface {
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, *googleUserInfo, error)
}

type googleClient struct {
	config *oauth2.Config
}

func NewGoogleClient() GoogleClient {
	return &googleClient{
		config: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleClient) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, *googleUserInfo, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao trocar o code do Google: %w", err)
	}

	client := g.config.Client(ctx, token)
	resp, err := client.Get(userinfoEndpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar perfil do Google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("perfil do Google retornou status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, nil, fmt.Errorf("erro ao decodificar perfil do Google: %w", err)
	}
	if info.ID == "" || info.Email == "" {
		return nil, nil, fmt.Errorf("perfil do Google incompleto")
	}

	return token, &info, nil
}
