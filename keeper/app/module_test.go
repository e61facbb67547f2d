package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/app"
	"github.com/hostkeeper/keeper/keeper/auth"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/rest"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

func TestModuleTestSuite(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	App         *fx.App
	Handler     *rest.Handler
	Issuer      *auth.Issuer
	Coordinator domain.ActionCoordinator
	Policy      *domain.PolicyStore
	Engine      *echo.Echo
}

func (suite *ModuleTestSuite) SetupSuite() {
	handlerModule, err := app.HandlerModule("keeper_config.test.toml", config.GetAbsPath("config"))
	suite.Require().NoError(err, "Failed to create handler module")
	suite.App = fx.New(
		handlerModule,
		fx.NopLogger,
		fx.Invoke(app.StartDispatcher),
		fx.Populate(&suite.Handler, &suite.Issuer, &suite.Coordinator, &suite.Policy),
	)
	suite.Require().NoError(suite.App.Err())
	suite.Require().NoError(suite.App.Start(context.Background()), "Failed to start Fx app")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	suite.Engine = e
	suite.Handler.SetupRoutes(e)
}

func (suite *ModuleTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.App.Stop(context.Background()))
}

func (suite *ModuleTestSuite) TestPolicyFollowsConfig() {
	p := suite.Policy.Get()
	suite.Equal(float64(300), p.HeavyProcessThreshold)
	suite.Equal(float64(150), p.Tabs.HeavyThresholdMB)
	suite.Equal(float64(350), p.Tabs.DomainWeights["youtube.com"])
	suite.Equal("root", p.Classifier.SuperUser)
}

func (suite *ModuleTestSuite) TestConfiguredCleanupCategories() {
	names := []string{}
	for _, c := range suite.Coordinator.CleanupCategories() {
		names = append(names, c.Name)
	}
	suite.Equal([]string{"scratch", "flush"}, names)
}

func (suite *ModuleTestSuite) TestProcessesBeforeFirstRefresh() {
	token, _, err := suite.Issuer.Issue("module-test")
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/processes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
	var resp map[string]any
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	suite.Equal(true, resp["success"])
}

func (suite *ModuleTestSuite) TestHealthEndpoint() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)
	suite.Equal(http.StatusOK, rec.Code)
}

func TestNewPolicyKeepsDefaultsForZeroValues(t *testing.T) {
	p := app.NewPolicy(config.KeeperConfig{})
	def := domain.DefaultPolicy()
	assert.Equal(t, def.HeavyProcessThreshold, p.HeavyProcessThreshold)
	assert.Equal(t, def.Classifier, p.Classifier)
	assert.Equal(t, def.Tabs.BaseMemoryMB, p.Tabs.BaseMemoryMB)
	assert.Nil(t, p.Tabs.DomainWeights)
}

func TestNewPolicyOverrides(t *testing.T) {
	p := app.NewPolicy(config.KeeperConfig{
		Processes: config.ProcessConfig{
			HeavyThresholdMB:     750,
			SuperUser:            "admin",
			ReservedUserPrefixes: []string{"svc-"},
			VendorNamespaces:     []string{},
		},
		Tabs: config.TabConfig{BaseMemoryMB: 60, HeavyThresholdMB: 120},
	})
	assert.Equal(t, float64(750), p.HeavyProcessThreshold)
	assert.Equal(t, "admin", p.Classifier.SuperUser)
	assert.Equal(t, []string{"svc-"}, p.Classifier.ReservedUserPrefixes)
	assert.Empty(t, p.Classifier.VendorNamespaces)
	assert.Equal(t, float64(60), p.Tabs.BaseMemoryMB)
	assert.Equal(t, float64(120), p.Tabs.HeavyThresholdMB)
}
