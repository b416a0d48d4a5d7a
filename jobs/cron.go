package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ReportCacheWarmer định nghĩa interface cho việc làm nóng cache báo cáo
type ReportCacheWarmer interface {
	WarmSalesReportCache() error
}

var reportWarmer ReportCacheWarmer

// SetReportWarmer thiết lập implementation cho ReportCacheWarmer
func SetReportWarmer(warmer ReportCacheWarmer) {
	reportWarmer = warmer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Printf("Đang làm nóng cache báo cáo doanh số lúc: %v", time.Now())
		if reportWarmer == nil {
			log.Printf("Lỗi: ReportCacheWarmer chưa được thiết lập")
			return
		}
		if err := reportWarmer.WarmSalesReportCache(); err != nil {
			log.Printf("Lỗi khi làm nóng cache báo cáo: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
