package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/spacieba/miss-france/internal/auth"
	"github.com/spacieba/miss-france/internal/config"
	"github.com/spacieba/miss-france/internal/handlers"
	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/repository"
	"github.com/spacieba/miss-france/internal/services"
)

// App holds all application dependencies
type App struct {
	log      logger.Logger
	handlers *handlers.Handlers
	repo     *repository.Repository
	baseURL  string
}

// New creates and initializes a new application instance. A non-nil
// projector mirrors the scoreboard to an external cache after every
// score change.
func New(log logger.Logger, cfg *config.Config, sessionAuth *auth.Auth, projector services.Projector) (*App, error) {
	repo, err := repository.New(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	// Initialize services
	scoreService := services.NewScoreService(log, repo)
	if projector != nil {
		scoreService.SetProjector(projector)
	}
	registryService := services.NewRegistryService(log, repo)
	playerService := services.NewPlayerService(log, repo)
	stageLock := services.NewStageLock()
	submissionService := services.NewSubmissionService(log, repo, stageLock)
	resultsService := services.NewResultsService(log, repo, scoreService, stageLock)
	quizService := services.NewQuizService(log, repo, scoreService)
	triviaService := services.NewTriviaService(log, repo, scoreService)
	challengeService := services.NewChallengeService(log, repo, scoreService)
	costumeService := services.NewCostumeService(log, repo, scoreService)
	leaderboardService := services.NewLeaderboardService(log, repo)

	// Seed the season's roster
	if _, err := registryService.Seed(context.Background(), cfg.Roster()); err != nil {
		return nil, fmt.Errorf("failed to seed candidates: %w", err)
	}

	h := handlers.New(
		playerService,
		registryService,
		submissionService,
		resultsService,
		scoreService,
		quizService,
		triviaService,
		challengeService,
		costumeService,
		leaderboardService,
		sessionAuth,
		log,
	)

	return &App{
		log:      log,
		handlers: h,
		repo:     repo,
		baseURL:  cfg.Server.BaseURL,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Close releases app resources
func (a *App) Close() error {
	return a.repo.Close()
}

// Run starts the HTTP server
func (a *App) Run(addr string) error {
	baseURL := a.baseURL
	if baseURL == "" {
		ip := getPreferredIP(realNetworkProvider{})
		baseURL = fmt.Sprintf("http://%s%s", ip, addr)
	}
	a.setDefaultBaseURL(baseURL)

	a.log.Info("Server starting", "url", baseURL)
	a.log.Info("Join URL", "url", baseURL+"/join")
	return http.ListenAndServe(addr, a.Router())
}

// setDefaultBaseURL sets the base URL setting if not already configured
// or if current value uses localhost (which isn't useful for QR codes)
func (a *App) setDefaultBaseURL(baseURL string) {
	ctx := context.Background()
	existing, _ := a.repo.GetSetting(ctx, "base_url")

	needsUpdate := existing == "" || strings.Contains(existing, "localhost")
	if needsUpdate {
		if err := a.repo.SetSetting(ctx, "base_url", baseURL); err != nil {
			a.log.Warn("Failed to set default base_url", "error", err)
		} else {
			a.log.Info("Default base URL set", "url", baseURL)
		}
	}
}

// networkInterface wraps net.Interface for testing
type networkInterface interface {
	Flags() net.Flags
	Addrs() ([]net.Addr, error)
}

// realInterface wraps a real net.Interface
type realInterface struct {
	iface net.Interface
}

func (r realInterface) Flags() net.Flags {
	return r.iface.Flags
}

func (r realInterface) Addrs() ([]net.Addr, error) {
	return r.iface.Addrs()
}

// networkProvider is an interface for getting network interfaces (for testing)
type networkProvider interface {
	Interfaces() ([]networkInterface, error)
}

// realNetworkProvider implements networkProvider using actual net package
type realNetworkProvider struct{}

func (realNetworkProvider) Interfaces() ([]networkInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	result := make([]networkInterface, len(ifaces))
	for i, iface := range ifaces {
		result[i] = realInterface{iface: iface}
	}
	return result, nil
}

// getPreferredIP returns the best IP address for LAN access.
// Prefers private network addresses (192.168.x.x, 10.x.x.x, 172.16-31.x.x).
// Falls back to localhost if no suitable address is found.
func getPreferredIP(provider networkProvider) string {
	ifaces, err := provider.Interfaces()
	if err != nil {
		return "localhost"
	}

	var candidates []net.IP

	for _, iface := range ifaces {
		flags := iface.Flags()
		if flags&net.FlagUp == 0 || flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip == nil || ip.To4() == nil {
				continue
			}
			if ip.IsLoopback() {
				continue
			}

			candidates = append(candidates, ip)
		}
	}

	// Prefer private network addresses
	for _, ip := range candidates {
		ipStr := ip.String()
		if strings.HasPrefix(ipStr, "192.168.") ||
			strings.HasPrefix(ipStr, "10.") ||
			isPrivate172(ip) {
			return ipStr
		}
	}

	if len(candidates) > 0 {
		return candidates[0].String()
	}

	return "localhost"
}

// isPrivate172 checks if IP is in 172.16.0.0/12 range
func isPrivate172(ip net.IP) bool {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31
	}
	return false
}
