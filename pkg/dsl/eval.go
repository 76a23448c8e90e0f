// Package dsl 提供基于 CEL (Common Expression Language) 的规则表达式求值，
// 用于配置驱动的候选过滤。
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("movie", cel.DynType),
		cel.Variable("query", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	if celEnv == nil && err == nil {
		err = fmt.Errorf("cel env not initialized")
	}
	return celEnv, err
}

// Program 是一条编译后的规则表达式，可反复求值。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：movie.vote_average >= 5.0 / movie.vote_count > 100
//   - 成员："Drama" in movie.genres
//   - 逻辑：movie.vote_average >= 5.0 && movie.runtime < 180.0
//   - 查询上下文：query.language == "en"
type Program struct {
	expr string
	prg  cel.Program
}

// Compile 编译规则表达式。编译失败是配置错误，应在启动期失败。
func Compile(expr string) (*Program, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile rule %q: %w", expr, issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program rule %q: %w", expr, err)
	}

	return &Program{expr: expr, prg: prg}, nil
}

// Expr 返回原始表达式文本（用于日志/解释）。
func (p *Program) Expr() string { return p.expr }

// Eval 对给定的 movie / query 变量求值，返回布尔结果。
// 表达式结果不是布尔值时视为求值错误。
func (p *Program) Eval(movie, query map[string]any) (bool, error) {
	out, _, err := p.prg.Eval(map[string]any{
		"movie": movie,
		"query": query,
	})
	if err != nil {
		return false, fmt.Errorf("eval rule %q: %w", p.expr, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("rule %q: result is not bool", p.expr)
	}
	return b, nil
}
