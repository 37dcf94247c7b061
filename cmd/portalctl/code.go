package main

import (
	"fmt"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/verification"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCodeCmd() *cobra.Command {
	codeCmd := &cobra.Command{
		Use:   "code",
		Short: "Derive or check teacher verification codes",
	}

	codeCmd.AddCommand(newCodeDeriveCmd(), newCodeVerifyCmd())

	return codeCmd
}

func newCodeDeriveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Print the verification code for a teacher name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := verification.DeriveCodeString(name)
			if err != nil {
				return errors.Wrap(err, "failed to derive code")
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)

			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Teacher display name, as typed at signup")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCodeVerifyCmd() *cobra.Command {
	var name, code string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a verification code against a teacher name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := verification.NewNameCodeVerifier().Verify(cmd.Context(), verification.Applicant{Name: name}, code)
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "valid")

				return nil
			case errors.Is(err, domainerrors.ErrVerificationFailed):
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")

				return err
			default:
				return errors.Wrap(err, "failed to verify code")
			}
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Teacher display name")
	cmd.Flags().StringVar(&code, "code", "", "Code to check")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
