package main

import (
	"fmt"
	"os"

	aliyunbilling "github.com/elC0mpa/aliyun-doctor/service/aliyun/billing"
	aliyunconfig "github.com/elC0mpa/aliyun-doctor/service/aliyun/config"
	aliyunecs "github.com/elC0mpa/aliyun-doctor/service/aliyun/ecs"
	"github.com/elC0mpa/aliyun-doctor/service/flag"
	"github.com/elC0mpa/aliyun-doctor/service/orchestrator"
	"github.com/elC0mpa/aliyun-doctor/service/report"
	"github.com/elC0mpa/aliyun-doctor/utils"
	"github.com/joho/godotenv"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	_ = godotenv.Load()
	accessKeyID := os.Getenv("ALIYUN_ACCESS_KEY_ID")
	accessKeySecret := os.Getenv("ALIYUN_ACCESS_KEY_SECRET")
	if accessKeyID == "" || accessKeySecret == "" {
		fmt.Fprintln(os.Stderr, "ALIYUN_ACCESS_KEY_ID and ALIYUN_ACCESS_KEY_SECRET must be set")
		os.Exit(1)
	}

	utils.StartSpinner()

	cfgService := aliyunconfig.NewService()

	billingService, err := aliyunbilling.NewService(cfgService.GetBssCfg(accessKeyID, accessKeySecret, flags.Region))
	if err != nil {
		panic(err)
	}

	instanceService, err := aliyunecs.NewService(cfgService.GetEcsCfg(accessKeyID, accessKeySecret, flags.Region))
	if err != nil {
		panic(err)
	}

	reportService := report.NewService()

	orchestratorService := orchestrator.NewService(billingService, instanceService, reportService)

	err = orchestratorService.Orchestrate(flags)
	if err != nil {
		utils.StopSpinner()
		panic(err)
	}
}
