package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// QuickActionSpec describes a suggested follow-up affordance attached
// to a bot reply.
type QuickActionSpec struct {
	Type  string                 `json:"type"`
	Label string                 `json:"label"`
	Icon  string                 `json:"icon"`
	Data  map[string]interface{} `json:"data,omitempty"`
}

// Response is the generated reply body for one intent.
type Response struct {
	Content      string
	QuickActions []QuickActionSpec
	Metadata     map[string]interface{}
}

// DroneStatus is the read-only drone view the generator renders for
// drone_status queries.
type DroneStatus struct {
	Id           uuid.UUID
	Status       string
	UrgencyLevel string
	Latitude     float64
	Longitude    float64
}

// DroneFinder is the drone registry collaborator: non-deleted drones,
// up to limit. Only the drone_status handler consumes it.
type DroneFinder interface {
	FindActiveDrones(ctx context.Context, limit int) ([]DroneStatus, error)
}

type handlerFunc func(ctx context.Context, message string) (*Response, error)

// Generator produces a canned response per intent. Only drone_status is
// data-driven; the remaining handlers return static illustrative text.
// They are placeholders by design and can be rewired to live sources
// without changing the contract shape.
type Generator struct {
	drones   DroneFinder
	handlers map[IntentTag]handlerFunc
}

func NewGenerator(drones DroneFinder) *Generator {
	g := &Generator{drones: drones}

	// Dispatch table instead of a conditional chain: adding an intent
	// is a data change.
	g.handlers = map[IntentTag]handlerFunc{
		IntentDroneStatus:        g.handleDroneStatus,
		IntentDeliveryManagement: g.handleDeliveryManagement,
		IntentInventory:          g.handleInventory,
		IntentFleetCoordination:  g.handleFleetCoordination,
		IntentDisasterPriority:   g.handleDisasterPriority,
		IntentAnalytics:          g.handleAnalytics,
		IntentWeather:            g.handleWeather,
		IntentCommunication:      g.handleCommunication,
		IntentGeneral:            g.handleGeneral,
	}

	return g
}

func (g *Generator) Generate(ctx context.Context, intent IntentTag, message string) (*Response, error) {
	handler, ok := g.handlers[intent]
	if !ok {
		handler = g.handleGeneral
	}
	return handler(ctx, message)
}

func (g *Generator) handleDroneStatus(ctx context.Context, message string) (*Response, error) {
	drones, err := g.drones.FindActiveDrones(ctx, 3)
	if err != nil {
		return nil, err
	}

	if len(drones) == 0 {
		return &Response{
			Content: "No active drones found in the system. Would you like me to help you add a new drone?",
			QuickActions: []QuickActionSpec{
				{Type: "create_order", Label: "Add Drone", Icon: "add"},
				{Type: "view_reports", Label: "View Fleet", Icon: "flight"},
			},
		}, nil
	}

	var sb strings.Builder
	sb.WriteString("Current drone status:\n\n")
	for _, drone := range drones {
		fmt.Fprintf(&sb, "🚁 %s: %s - %s priority\n", drone.Id.String()[:8], drone.Status, drone.UrgencyLevel)
		fmt.Fprintf(&sb, "   Location: %g, %g\n\n", drone.Latitude, drone.Longitude)
	}

	return &Response{
		Content: sb.String(),
		QuickActions: []QuickActionSpec{
			{Type: "track_drone", Label: "Live Tracking", Icon: "location_on"},
			{Type: "fleet_status", Label: "Fleet Details", Icon: "flight"},
			{Type: "emergency_alert", Label: "Emergency Return", Icon: "warning"},
		},
		Metadata: map[string]interface{}{"drone_count": len(drones)},
	}, nil
}

func (g *Generator) handleDeliveryManagement(ctx context.Context, message string) (*Response, error) {
	return &Response{
		Content: "I can help you manage deliveries and orders. Current active deliveries: 12 in progress, 3 pending assignment. Average ETA: 18 minutes. Would you like to create a new order or check existing deliveries?",
		QuickActions: []QuickActionSpec{
			{Type: "create_order", Label: "New Order", Icon: "add"},
			{Type: "track_drone", Label: "Track Deliveries", Icon: "local_shipping"},
			{Type: "view_reports", Label: "Delivery Reports", Icon: "assessment"},
		},
	}, nil
}

func (g *Generator) handleInventory(ctx context.Context, message string) (*Response, error) {
	return &Response{
		Content: "Inventory Status: Medical supplies at 78%, Food supplies at 45% (LOW STOCK ALERT), Water at 92%. 2 suppliers available for emergency restocking. Would you like me to contact suppliers or update inventory?",
		QuickActions: []QuickActionSpec{
			{Type: "inventory_check", Label: "Full Inventory", Icon: "inventory"},
			{Type: "emergency_alert", Label: "Contact Suppliers", Icon: "phone"},
			{Type: "view_reports", Label: "Stock Reports", Icon: "bar_chart"},
		},
	}, nil
}

func (g *Generator) handleFleetCoordination(ctx context.Context, message string) (*Response, error) {
	return &Response{
		Content: "Fleet Coordination: 8 drones active, 2 in maintenance, 1 on standby. Nearest available drone is 2.3km from your location. I can assign drones based on proximity and urgency. What's your coordination need?",
		QuickActions: []QuickActionSpec{
			{Type: "fleet_status", Label: "Fleet Overview", Icon: "flight"},
			{Type: "track_drone", Label: "Assign Nearest", Icon: "near_me"},
			{Type: "emergency_alert", Label: "Emergency Dispatch", Icon: "emergency"},
		},
	}, nil
}

func (g *Generator) handleDisasterPriority(ctx context.Context, message string) (*Response, error) {
	return &Response{
		Content: "Disaster Zone Priority System Active: 3 critical zones identified, 5 high-priority areas monitored. Current response time: 12 minutes average. Emergency protocols are ready for deployment. How can I assist with prioritization?",
		QuickActions: []QuickActionSpec{
			{Type: "emergency_alert", Label: "Priority Zones", Icon: "priority_high"},
			{Type: "track_drone", Label: "Optimal Routes", Icon: "route"},
			{Type: "view_reports", Label: "Zone Analytics", Icon: "analytics"},
		},
	}, nil
}

func (g *Generator) handleAnalytics(ctx context.Context, message string) (*Response, error) {
	return &Response{
		Content: "Analytics Summary: This week - 156 successful deliveries (94% success rate), 23% improvement in response time, 12 drones deployed. Cost efficiency up 18%. Would you like detailed reports or specific metrics?",
		QuickActions: []QuickActionSpec{
			{Type: "view_reports", Label: "Detailed Reports", Icon: "assessment"},
			{Type: "view_reports", Label: "Export Data", Icon: "download"},
			{Type: "view_reports", Label: "Performance Trends", Icon: "trending_up"},
		},
	}, nil
}

func (g *Generator) handleWeather(ctx context.Context, message string) (*Response, error) {
	return &Response{
		Content: "Weather Conditions: Clear skies, wind 8 mph NE, visibility 10 miles, temperature 22°C. Flight conditions: OPTIMAL. No weather restrictions for drone operations. Next weather update in 2 hours.",
		QuickActions: []QuickActionSpec{
			{Type: "check_weather", Label: "Detailed Forecast", Icon: "wb_sunny"},
			{Type: "track_drone", Label: "Flight Planning", Icon: "flight_takeoff"},
			{Type: "emergency_alert", Label: "Weather Alerts", Icon: "warning"},
		},
	}, nil
}

func (g *Generator) handleCommunication(ctx context.Context, message string) (*Response, error) {
	return &Response{
		Content: "Communication Center: 3 active alerts, 12 messages in queue, all systems operational. Emergency channels are clear. I can send notifications, connect you with team members, or manage alerts. What do you need?",
		QuickActions: []QuickActionSpec{
			{Type: "emergency_alert", Label: "Send Alert", Icon: "notification_important"},
			{Type: "view_reports", Label: "Message Center", Icon: "message"},
			{Type: "emergency_alert", Label: "Contact Support", Icon: "support_agent"},
		},
	}, nil
}

func (g *Generator) handleGeneral(ctx context.Context, message string) (*Response, error) {
	return &Response{
		Content: "I'm your AI assistant for drone disaster management. I can help you with drone tracking, delivery management, inventory control, fleet coordination, disaster response, analytics, weather updates, and communications. What would you like to know?",
		QuickActions: []QuickActionSpec{
			{Type: "track_drone", Label: "Track Drones", Icon: "location_on"},
			{Type: "view_reports", Label: "View Reports", Icon: "assessment"},
			{Type: "fleet_status", Label: "Fleet Status", Icon: "flight"},
			{Type: "emergency_alert", Label: "Emergency", Icon: "emergency"},
		},
	}, nil
}
