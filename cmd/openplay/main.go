package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nickdiaz444/pickleball-open-play4/internal/config"
	"github.com/nickdiaz444/pickleball-open-play4/internal/logger"
	"github.com/nickdiaz444/pickleball-open-play4/internal/rotation"
	"github.com/nickdiaz444/pickleball-open-play4/internal/ui"
)

func main() {
	if err := root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		os.Exit(1)
	}
}

func root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openplay",
		Short: "匹克球开放场轮转工具",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		Long: heredoc.Doc(`openplay 管理匹克球开放场的上场轮转：报名的玩家排进
			候补队列，按队列顺序补进场地，每局四人；记录胜负后败方
			下场排队，胜方拆队各带一名新搭档，连打满上限后全场轮换。

			所有状态保存在内存中，程序退出即清空。配置文件按
			XDG 规范查找，命令行参数优先于配置文件。`),

		RunE: run,
	}

	cmd.Flags().String("config", config.DefaultPath(), "配置文件路径")
	cmd.Flags().Int("courts", 0, "场地数 (1-3)")
	cmd.Flags().Int("max-players", 0, "玩家人数上限 (1-20)")
	cmd.Flags().Int("games", 0, "胜方连打局数上限")
	cmd.Flags().Bool("auto-fill", false, "启动时开启自动补位")
	cmd.Flags().Bool("mute", false, "关闭音效")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer logger.Close()

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Infof("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}
	applyFlagOverrides(cmd, cfg)

	session, err := rotation.NewSession(cfg.Session.Settings())
	if err != nil {
		return err
	}

	muted := !cfg.UI.SoundEnabled()
	if mute, _ := cmd.Flags().GetBool("mute"); mute {
		muted = true
	}

	m := ui.NewSessionModel(session, cfg.UI.AutoFillIntervalDuration(), muted)

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("启动界面失败: %w", err)
	}

	fmt.Printf("本场日志: %s\n", logger.GetLogPath())
	return nil
}

// applyFlagOverrides lets explicitly set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("courts") {
		cfg.Session.Courts, _ = cmd.Flags().GetInt("courts")
	}
	if cmd.Flags().Changed("max-players") {
		cfg.Session.MaxPlayers, _ = cmd.Flags().GetInt("max-players")
	}
	if cmd.Flags().Changed("games") {
		cfg.Session.GamesPerRotation, _ = cmd.Flags().GetInt("games")
	}
	if cmd.Flags().Changed("auto-fill") {
		cfg.Session.AutoFill, _ = cmd.Flags().GetBool("auto-fill")
	}
}
