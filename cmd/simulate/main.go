// simulate 无界面批量模拟工具
//
// 用固定种子和自动驾驶策略并行跑多局游戏，输出波次和存活时间统计，
// 可选地把成绩写入本地排行榜。
//
// 用法：
//
//	go run ./cmd/simulate -runs 200 -seed 7
//	go run ./cmd/simulate -runs 50 -record -name bot
//	go run ./cmd/simulate -print-board
//	go run ./cmd/simulate -reset-scores
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/decker502/echoorbit/pkg/components"
	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/game"
)

var (
	runs        = flag.Int("runs", 100, "模拟局数")
	baseSeed    = flag.Int64("seed", 1, "第一局的随机种子，第 i 局使用 seed+i")
	maxSeconds  = flag.Float64("max-seconds", 300, "单局最长模拟时间（秒），超时视为结束")
	workers     = flag.Int("workers", runtime.NumCPU(), "并行 goroutine 数")
	tuningPath  = flag.String("tuning", "", "调参文件路径（默认使用内置默认值）")
	record      = flag.Bool("record", false, "把成绩写入本地排行榜")
	playerName  = flag.String("name", "sim", "写入排行榜时使用的名字")
	printBoard  = flag.Bool("print-board", false, "打印本地排行榜后退出")
	resetScores = flag.Bool("reset-scores", false, "清空本地排行榜后退出")
	verbose     = flag.Bool("verbose", false, "显示详细日志")
)

// simDt 模拟步长，与游戏一致
const simDt = 1.0 / 60.0

// runReport 单局模拟结果
type runReport struct {
	Seed      int64
	Run       *game.RunController
	Wave      int
	Time      float64
	Collected [3]int
	TimedOut  bool
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if *printBoard || *resetScores {
		if err := manageBoard(os.Stdout, *resetScores); err != nil {
			fmt.Fprintf(os.Stderr, "排行榜操作失败: %v\n", err)
			os.Exit(1)
		}
		return
	}

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		var err error
		tuning, err = config.LoadTuningConfig(*tuningPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "调参配置加载失败: %v\n", err)
			os.Exit(1)
		}
	}

	reports, err := simulateAll(context.Background(), tuning, *runs, *workers, *baseSeed, *maxSeconds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "模拟失败: %v\n", err)
		os.Exit(1)
	}

	printSummary(os.Stdout, reports)

	if *record {
		lb := game.NewLeaderboard(game.OpenStore(game.AppName))
		placed := submitAll(reports, *playerName, lb)
		fmt.Printf("\nrecorded %d runs, %d placed on the leaderboard\n", len(reports), placed)
	}
}

// simulateAll 并行模拟 n 局
//
// 每局使用独立的 RunController 和随机源，在各自的 goroutine 中运行；
// 结果按局序号写入预分配的切片，无需加锁。
func simulateAll(ctx context.Context, tuning *config.TuningConfig, n, workers int, seed int64, maxSeconds float64) ([]runReport, error) {
	if workers < 1 {
		workers = 1
	}

	reports := make([]runReport, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			report, err := simulateRun(ctx, tuning, seed+int64(i), maxSeconds)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// simulateRun 用自动驾驶跑完一局
func simulateRun(ctx context.Context, tuning *config.TuningConfig, seed int64, maxSeconds float64) (runReport, error) {
	cx, cy := config.GetArenaCenter()
	rc := game.NewRunController(tuning, cx, cy, rand.New(rand.NewSource(seed)))
	pilot := Autopilot{}

	report := runReport{Seed: seed, Run: rc}

	rc.StartRun()
	for tick := 0; rc.Phase() == game.RunPhasePlaying; tick++ {
		if tick%600 == 0 {
			if err := ctx.Err(); err != nil {
				return report, err
			}
		}
		if rc.Elapsed() >= maxSeconds {
			report.TimedOut = true
			rc.EndRun()
			break
		}

		for _, ev := range rc.Update(simDt, pilot.Decide(rc)) {
			if ev.Kind == components.EventCollected {
				report.Collected[ev.Pickup]++
			}
		}
	}

	result, _ := rc.PendingScore()
	report.Wave = result.Wave
	report.Time = result.Time
	log.Printf("[Simulate] seed=%d run=%s wave=%d time=%.1fs", seed, result.RunID, result.Wave, result.Time)
	return report, nil
}

// submitAll 在单个 goroutine 中把所有成绩写入排行榜
//
// 返回进入排行榜的局数（按提交时的名次统计）
func submitAll(reports []runReport, name string, lb *game.Leaderboard) int {
	placed := 0
	for _, r := range reports {
		if r.Run.SubmitScore(name, lb) > 0 {
			placed++
		}
	}
	return placed
}

// printSummary 输出统计结果
func printSummary(w io.Writer, reports []runReport) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "no runs")
		return
	}

	sorted := make([]runReport, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Wave != sorted[j].Wave {
			return sorted[i].Wave > sorted[j].Wave
		}
		return sorted[i].Time > sorted[j].Time
	})

	var totalTime float64
	var totalWave, timedOut int
	var collected [3]int
	for _, r := range reports {
		totalTime += r.Time
		totalWave += r.Wave
		if r.TimedOut {
			timedOut++
		}
		for k := range collected {
			collected[k] += r.Collected[k]
		}
	}

	n := float64(len(reports))
	fmt.Fprintf(w, "runs: %d   timed out: %d\n", len(reports), timedOut)
	fmt.Fprintf(w, "mean wave: %.2f   mean time: %.1fs   median time: %.1fs\n",
		float64(totalWave)/n, totalTime/n, sorted[len(sorted)/2].Time)
	fmt.Fprintf(w, "pickups: gold %d   blue %d   purple %d\n",
		collected[components.PickupGold], collected[components.PickupBlue], collected[components.PickupPurple])

	fmt.Fprintln(w, "\nbest runs:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tseed\twave\ttime")
	for i := 0; i < len(sorted) && i < game.MaxLeaderboardEntries; i++ {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.1fs\n", i+1, sorted[i].Seed, sorted[i].Wave, sorted[i].Time)
	}
	tw.Flush()
}

// manageBoard 打印或清空本地排行榜
func manageBoard(w io.Writer, reset bool) error {
	store := game.OpenStore(game.AppName)
	if store == nil {
		return fmt.Errorf("local storage is not available")
	}
	lb := game.NewLeaderboard(store)

	if reset {
		if err := lb.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(w, "leaderboard cleared")
		return nil
	}

	printBoardEntries(w, lb.Entries())
	return nil
}

func printBoardEntries(w io.Writer, entries []game.ScoreEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "leaderboard is empty")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tname\twave\ttime")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.1fs\n", i+1, e.Name, e.Wave, e.Time)
	}
	tw.Flush()
}
