package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/odic/di"
	"github.com/sghaida/odic/messenger"
)

func newDispatchCmd(cfgFile *string) *cobra.Command {
	var (
		content  string
		priority string
		scripted bool
	)

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Encrypt and log one message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := messenger.ParsePriority(priority)
			if err != nil {
				return err
			}

			c, err := wire(*cfgFile, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = c.log.Sync() }()

			m, err := di.Resolve[*messenger.Messenger](c.resolver)
			if err != nil {
				return fmt.Errorf("resolve messenger: %w", err)
			}

			msg := &messenger.Message{Content: content, Scripted: scripted, Priority: p}
			if err := m.Dispatch(msg); err != nil {
				c.log.Warn("dispatch rejected", zap.Error(err))
				return fmt.Errorf("dispatch: %w", err)
			}

			fields := []zap.Field{
				zap.Stringer("id", msg.ID),
				zap.Stringer("priority", msg.Priority),
			}
			if msg.PriorityDetails != nil {
				fields = append(fields, zap.Time("timestamp", msg.PriorityDetails.Timestamp))
			}
			c.log.Info("message dispatched", fields...)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "Raw message", "message content")
	cmd.Flags().StringVarP(&priority, "priority", "p", "high", "message priority: low, intermediate or high")
	cmd.Flags().BoolVar(&scripted, "scripted", false, "mark the content as already scripted")
	return cmd
}
