package kpisynth

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownTab is returned for a tab outside the fixed set
var ErrUnknownTab = errors.New("kpisynth: unknown tab")

func unknownTab(t Tab) error { return fmt.Errorf("%w %q", ErrUnknownTab, string(t)) }

// CardDef is the baseline for one card
type CardDef struct {
	Key   string
	Title string
	Base  float64
	Unit  string
	Trend float64
	Max   float64
}

// SliceDef is the baseline for one breakdown entry
type SliceDef struct {
	Label string
	Base  float64
	Color string
}

// TabDef is the hand authored ground truth for a tab
type TabDef struct {
	Title     string
	Cards     []CardDef
	Breakdown []SliceDef
	Insights  []string
}

// registry is read only after init
var registry = map[Tab]TabDef{
	TabCommand: {
		Title: "Chỉ huy điều hành",
		Cards: []CardDef{
			{Key: "cases_handled", Title: "Vụ việc đã xử lý", Base: 1240, Unit: "vụ", Trend: 6.4, Max: 2000},
			{Key: "violation_rate", Title: "Tỷ lệ vi phạm", Base: 18.5, Unit: "%", Trend: -2.1, Max: 100},
			{Key: "avg_handling", Title: "Thời gian xử lý trung bình", Base: 4.2, Unit: "ngày", Trend: -0.8, Max: 30},
			{Key: "fines_collected", Title: "Tiền phạt thu nộp", Base: 86.4, Unit: "tỷ", Trend: 9.2, Max: 150},
		},
		Breakdown: []SliceDef{
			{Label: "Hàng giả", Base: 420, Color: "#ef4444"},
			{Label: "Gian lận thương mại", Base: 310, Color: "#f59e0b"},
			{Label: "Hàng nhập lậu", Base: 280, Color: "#3b82f6"},
			{Label: "Vi phạm khác", Base: 230, Color: "#10b981"},
		},
		Insights: []string{
			"Hàng giả tiếp tục chiếm tỷ trọng lớn nhất trong các vụ việc đã xử lý.",
			"Thời gian xử lý trung bình giảm nhờ quy trình phối hợp liên ngành.",
			"Tiền phạt thu nộp tăng so với kỳ trước, tập trung ở các địa bàn trọng điểm.",
		},
	},
	TabOps: {
		Title: "Tác nghiệp",
		Cards: []CardDef{
			{Key: "inspections", Title: "Cuộc kiểm tra", Base: 860, Unit: "cuộc", Trend: 4.1, Max: 1500},
			{Key: "on_time_rate", Title: "Hoàn thành đúng hạn", Base: 91.2, Unit: "%", Trend: 1.3, Max: 100},
			{Key: "field_hours", Title: "Giờ hiện trường trung bình", Base: 6.5, Unit: "giờ", Trend: -0.4, Max: 24},
			{Key: "seized_goods", Title: "Giá trị hàng tạm giữ", Base: 12.8, Unit: "tỷ", Trend: 3.5, Max: 40},
		},
		Breakdown: []SliceDef{
			{Label: "Kiểm tra định kỳ", Base: 380, Color: "#6366f1"},
			{Label: "Kiểm tra đột xuất", Base: 290, Color: "#f97316"},
			{Label: "Phối hợp liên ngành", Base: 190, Color: "#14b8a6"},
		},
		Insights: []string{
			"Tỷ lệ hoàn thành đúng hạn duy trì trên 90% ở hầu hết các đội.",
			"Kiểm tra đột xuất tăng tại các chợ đầu mối vào cuối tháng.",
		},
	},
	TabFeedback: {
		Title: "Phản ánh",
		Cards: []CardDef{
			{Key: "reports_received", Title: "Phản ánh tiếp nhận", Base: 3420, Unit: "phản ánh", Trend: 11.6, Max: 6000},
			{Key: "resolved_rate", Title: "Đã giải quyết", Base: 76.8, Unit: "%", Trend: 3.2, Max: 100},
			{Key: "response_time", Title: "Thời gian phản hồi", Base: 1.8, Unit: "ngày", Trend: -0.3, Max: 30},
		},
		Breakdown: []SliceDef{
			{Label: "Đường dây nóng", Base: 1120, Color: "#0ea5e9"},
			{Label: "Cổng thông tin điện tử", Base: 1460, Color: "#8b5cf6"},
			{Label: "Ứng dụng di động", Base: 640, Color: "#22c55e"},
			{Label: "Trực tiếp", Base: 200, Color: "#eab308"},
		},
		Insights: []string{
			"Cổng thông tin điện tử là kênh tiếp nhận phản ánh chủ yếu.",
			"Thời gian phản hồi trung bình dưới hai ngày làm việc.",
			"Phản ánh qua ứng dụng di động tăng đều theo từng tuần.",
		},
	},
	TabRisk: {
		Title: "Rủi ro",
		Cards: []CardDef{
			{Key: "open_leads", Title: "Nguồn tin đang xử lý", Base: 214, Unit: "nguồn tin", Trend: 5.0, Max: 500},
			{Key: "high_risk_share", Title: "Tỷ lệ rủi ro cao", Base: 23.4, Unit: "%", Trend: 1.8, Max: 100},
			{Key: "verification_time", Title: "Thời gian xác minh", Base: 7.6, Unit: "ngày", Trend: -1.1, Max: 30},
			{Key: "exposure", Title: "Giá trị rủi ro ước tính", Base: 142.5, Unit: "tỷ", Trend: 7.4, Max: 300},
		},
		Breakdown: []SliceDef{
			{Label: "Rủi ro cao", Base: 50, Color: "#dc2626"},
			{Label: "Rủi ro trung bình", Base: 96, Color: "#f59e0b"},
			{Label: "Rủi ro thấp", Base: 68, Color: "#16a34a"},
		},
		Insights: []string{
			"Nguồn tin rủi ro cao tập trung ở lĩnh vực thương mại điện tử.",
			"Thời gian xác minh giảm khi có dữ liệu đối chiếu từ cơ quan thuế.",
		},
	},
	TabMarket: {
		Title: "Thị trường",
		Cards: []CardDef{
			{Key: "monitored_outlets", Title: "Cơ sở được giám sát", Base: 5480, Unit: "cơ sở", Trend: 2.2, Max: 8000},
			{Key: "price_compliance", Title: "Tuân thủ niêm yết giá", Base: 88.6, Unit: "%", Trend: 0.9, Max: 100},
			{Key: "price_alerts", Title: "Cảnh báo biến động giá", Base: 37, Unit: "cảnh báo", Trend: -4.5, Max: 120},
			{Key: "ecommerce_value", Title: "Giá trị thương mại điện tử rà soát", Base: 61.3, Unit: "tỷ", Trend: 12.1, Max: 120},
		},
		Breakdown: []SliceDef{
			{Label: "Thực phẩm", Base: 1620, Color: "#f43f5e"},
			{Label: "Dược phẩm", Base: 840, Color: "#06b6d4"},
			{Label: "Mỹ phẩm", Base: 1110, Color: "#d946ef"},
			{Label: "Điện tử", Base: 930, Color: "#64748b"},
			{Label: "Khác", Base: 980, Color: "#a3a3a3"},
		},
		Insights: []string{
			"Nhóm thực phẩm có số cơ sở được giám sát cao nhất.",
			"Cảnh báo biến động giá giảm sau đợt bình ổn thị trường.",
			"Giá trị giao dịch thương mại điện tử được rà soát tăng mạnh.",
		},
	},
}

// Definition returns a copy of the baseline for t
func Definition(t Tab) (TabDef, error) {
	d, ok := registry[t]
	if !ok {
		return TabDef{}, unknownTab(t)
	}
	d.Cards = slices.Clone(d.Cards)
	d.Breakdown = slices.Clone(d.Breakdown)
	d.Insights = slices.Clone(d.Insights)
	return d, nil
}
